package main

import (
	"github.com/avdeyev/tlog"
	"github.com/avdeyev/tlog/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := tlog.NewBuilder().
		LevelString("debug").
		TargetString("file").
		FilePath("/var/log/gnet/echo.log").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	adapter := compat.NewGnetAdapter(logger)

	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(adapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
