// Package server serves a single Network over HTTP.
//
// The routes are:
//
//	GET  /network   the Network in the format written by neuralnet.Encode
//	GET  /info      the kind and sizes of the Network
//	POST /evaluate  {"inputs": [...]} -> {"outputs": [...]}
//	POST /train     {"inputs": [...], "targets": [...], "rate": r} -> {"outputs": [...], "cost": c}
//	POST /save      writes the Network to the path given to New
//
// Requests are serialized; a Network is never used by two requests at once. Every response carries
// an X-Request-ID header, which is also given in the request log. A request that already has one
// keeps it.
package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	nn "github.com/sharnoff/neuralnet"
)

// Server holds the Network being served, and the gin engine serving it.
type Server struct {
	mux sync.Mutex
	net nn.Kinded

	// path the Network is saved to; empty if saving is disabled
	path string

	costFunc nn.CostFunction
	logger   *slog.Logger
	engine   *gin.Engine
}

// EvaluateRequest is the body of POST /evaluate
type EvaluateRequest struct {
	Inputs []float64 `json:"inputs" binding:"required"`
}

// EvaluateResponse is the body returned from POST /evaluate
type EvaluateResponse struct {
	Outputs []float64 `json:"outputs"`
}

// TrainRequest is the body of POST /train. If Errors is given, it is used directly; otherwise the
// errors are given by the Server's cost function, from Targets.
type TrainRequest struct {
	Inputs  []float64 `json:"inputs" binding:"required"`
	Targets []float64 `json:"targets"`
	Errors  []float64 `json:"errors"`
	Rate    float64   `json:"rate"`
}

// TrainResponse is the body returned from POST /train. Outputs are those from before training.
// Cost is only set if Targets were given.
type TrainResponse struct {
	Outputs []float64 `json:"outputs"`
	Cost    *float64  `json:"cost,omitempty"`
}

// InfoResponse is the body returned from GET /info
type InfoResponse struct {
	Kind    string `json:"kind"`
	Inputs  int    `json:"inputs,omitempty"`
	Hidden  int    `json:"hidden,omitempty"`
	Outputs int    `json:"outputs,omitempty"`
}

// New returns a Server for the given Network. If path is empty, POST /save is disabled. If
// logger is nil, slog.Default() is used.
func New(net nn.Kinded, path string, logger *slog.Logger) *Server {
	if net == nil {
		panic(errors.Errorf("Can't make server, Network is nil"))
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		net:      net,
		path:     path,
		costFunc: nn.SquaredError(),
		logger:   logger,
	}

	s.engine = gin.New()
	s.engine.Use(s.logRequests(), gin.Recovery())

	s.engine.GET("/network", s.getNetwork)
	s.engine.GET("/info", s.getInfo)
	s.engine.POST("/evaluate", s.evaluate)
	s.engine.POST("/train", s.train)
	s.engine.POST("/save", s.save)

	return s
}

// SetCostFunc sets the cost function used to find errors from targets in POST /train, returning
// the Server. The default is neuralnet.SquaredError().
func (s *Server) SetCostFunc(cf nn.CostFunction) *Server {
	if cf == nil {
		panic(errors.Errorf("Can't set cost function, CostFunction is nil"))
	}

	s.mux.Lock()
	s.costFunc = cf
	s.mux.Unlock()
	return s
}

// Handler returns the http.Handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr and serves until an error occurs.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving network", "kind", s.net.Kind(), "address", addr)
	return s.engine.Run(addr)
}

// RequestIDHeader is the header that identifies a request in the log
const RequestIDHeader = "X-Request-ID"

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		attrs := []any{
			"request", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}

		if len(c.Errors) != 0 {
			s.logger.Warn("request failed", append(attrs, "error", c.Errors.String())...)
		} else {
			s.logger.Debug("request", attrs...)
		}
	}
}

// fail aborts the request with the given status, keeping err for the request log
func fail(c *gin.Context, status int, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}

// statusOf returns the HTTP status for an error from the Network
func statusOf(err error) int {
	switch errors.Cause(err).(type) {
	case nn.SizeMismatchError:
		return http.StatusBadRequest
	}

	if errors.Cause(err) == nn.ErrNoDerivative {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func (s *Server) getNetwork(c *gin.Context) {
	var buf bytes.Buffer

	s.mux.Lock()
	err := nn.Encode(&buf, s.net)
	s.mux.Unlock()

	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Server) getInfo(c *gin.Context) {
	info := InfoResponse{Kind: s.net.Kind()}

	if sh, ok := s.net.(nn.Shaped); ok {
		info.Inputs, info.Outputs = sh.InputSize(), sh.OutputSize()
	}
	if m, ok := s.net.(*nn.Multilayer); ok {
		info.Hidden = m.HiddenSize()
	}

	c.JSON(http.StatusOK, info)
}

func (s *Server) evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.Wrapf(err, "Bad evaluate request"))
		return
	}

	s.mux.Lock()
	outs, err := s.net.Evaluate(req.Inputs)
	s.mux.Unlock()

	if err != nil {
		fail(c, statusOf(err), errors.Wrapf(err, "Failed to evaluate network"))
		return
	}

	c.JSON(http.StatusOK, EvaluateResponse{Outputs: outs})
}

func (s *Server) train(c *gin.Context) {
	var req TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.Wrapf(err, "Bad train request"))
		return
	} else if req.Errors == nil && req.Targets == nil {
		fail(c, http.StatusBadRequest, errors.Errorf("Bad train request, one of errors or targets must be given"))
		return
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	// a Multilayer trains from the state left by Evaluate, so always evaluate first
	outs, err := s.net.Evaluate(req.Inputs)
	if err != nil {
		fail(c, statusOf(err), errors.Wrapf(err, "Failed to evaluate network"))
		return
	}

	resp := TrainResponse{Outputs: outs}

	errs := req.Errors
	if errs == nil {
		if len(req.Targets) != len(outs) {
			fail(c, http.StatusBadRequest, nn.SizeMismatchError{Expected: len(outs), Got: len(req.Targets), What: "targets"})
			return
		}

		cost := s.costFunc.Cost(outs, req.Targets)
		resp.Cost = &cost

		errs = s.costFunc.Derivs(outs, req.Targets)
		for i := range errs {
			errs[i] = -errs[i]
		}
	}

	if err = s.net.Train(req.Inputs, errs, req.Rate); err != nil {
		fail(c, statusOf(err), errors.Wrapf(err, "Failed to train network"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) save(c *gin.Context) {
	if s.path == "" {
		fail(c, http.StatusConflict, errors.Errorf("Saving is not enabled for this server"))
		return
	}

	s.mux.Lock()
	err := nn.Save(s.net, s.path, true)
	s.mux.Unlock()

	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("saved network", "path", s.path)
	c.JSON(http.StatusOK, gin.H{"path": s.path})
}
