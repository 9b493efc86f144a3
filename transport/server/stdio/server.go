// Package stdio serves a connector over line-delimited standard input and output.
package stdio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/viant/jsonrpc-connector"
	"github.com/viant/jsonrpc-connector/connector"
	"github.com/viant/jsonrpc-connector/transport"
	"github.com/viant/jsonrpc-connector/transport/server/base"
)

// Server reads one JSON-RPC message per line and writes one response per line
type Server struct {
	base       *base.Handler
	connection *transport.Connection
	inout      io.ReadCloser
	reader     *bufio.Reader
	writer     io.Writer
	mux        sync.Mutex
	wg         sync.WaitGroup
	logger     jsonrpc.Logger
	ctx        context.Context
}

// ListenAndServe serves lines until input is exhausted or context is cancelled.
// Lines are handled concurrently; pending responses are flushed before returning.
func (t *Server) ListenAndServe() error {
	if t.reader == nil && t.inout != nil {
		t.reader = bufio.NewReader(t.inout)
	}
	defer t.wg.Wait()
	for {
		if err := t.ctx.Err(); err != nil {
			return err
		}
		line, err := t.readLine(t.ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.wg.Add(1)
		go t.handle([]byte(line))
	}
}

func (t *Server) handle(data []byte) {
	defer t.wg.Done()
	response := t.base.HandleMessage(t.ctx, t.connection, data)
	t.mux.Lock()
	defer t.mux.Unlock()
	if _, err := t.writer.Write(base.FrameLine(response)); err != nil {
		t.logger.Errorf("failed to write response: %v", err)
	}
}

func (t *Server) readLine(ctx context.Context) (string, error) {
	if t.reader == nil {
		return "", fmt.Errorf("reader is not initialized")
	}
	readChan := make(chan string, 1)
	errChan := make(chan error, 1)
	go func() {
		line, err := t.reader.ReadString('\n')
		if line != "" && (err == nil || err == io.EOF) {
			readChan <- line
			return
		}
		errChan <- err
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errChan:
		return "", err
	case line := <-readChan:
		return line, nil
	}
}

// New creates a stdio server for the connector
func New(ctx context.Context, aConnector *connector.Connector, options ...Option) *Server {
	if ctx == nil {
		ctx = context.Background()
	}
	ret := &Server{
		connection: transport.NewStdioConnection(),
		inout:      os.Stdin,
		writer:     os.Stdout,
		logger:     jsonrpc.DefaultLogger,
		ctx:        ctx,
	}
	for _, option := range options {
		option(ret)
	}
	ret.base = base.NewHandler(aConnector, ret.logger)
	if ret.reader == nil && ret.inout != nil {
		ret.reader = bufio.NewReader(ret.inout)
	}
	return ret
}
