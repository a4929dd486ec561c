package main

import (
	"net/http"
	"time"

	"golang.org/x/net/context"
)

type httpStatusService struct {
	srv     *http.Server
	handler *apiHandler
	logger  flogger
}

func (h *httpStatusService) launch(handler *apiHandler, addr string) {
	h.handler = handler
	h.logger = &ThreadLogger{name: "HTTP"}
	h.srv = &http.Server{Addr: addr, Handler: handler.router()}

	// add to the wg
	wg.Add(1)

	// launch the server
	go func(srv *http.Server) {
		defer wg.Done()
		h.logger.Println("starting status http server")
		err := srv.ListenAndServe()
		if err != http.ErrServerClosed {
			h.logger.Printf("status server failed: %v", err)
		}
		h.logger.Println("exiting status service")
	}(h.srv)
}

func (h *httpStatusService) stop() {
	if h.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	h.srv.Shutdown(ctx)
}
