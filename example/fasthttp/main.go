package main

import (
	"fmt"
	"time"

	"github.com/avdeyev/tlog"
	"github.com/avdeyev/tlog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	logger, err := tlog.NewBuilder().
		Level(tlog.LevelInfo).
		Target(tlog.TargetBoth).
		FilePath("/var/log/fasthttp/server.log").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	adapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(tlog.LevelInfo),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  adapter,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Critical("server error: ", err)
		logger.Flush(time.Second)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	fmt.Fprintf(ctx, "hello from %s", ctx.Path())
}
