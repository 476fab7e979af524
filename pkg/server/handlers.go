package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/pathfinder/pkg/buildinfo"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/graph"
	"github.com/matzehuels/pathfinder/pkg/render/nodelink"
	"github.com/matzehuels/pathfinder/pkg/solver"
)

// errorResponse is the body of a rejected request.
type errorResponse struct {
	Error     string      `json:"error"`
	Code      errors.Code `json:"code"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleShortestPath(w http.ResponseWriter, r *http.Request) {
	_, res, err := s.solve(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := res.Response()
	resp.RequestID = RequestIDFromContext(r.Context())
	writeJSON(w, http.StatusOK, resp)
}

// handleRender draws the graph with the shortest path highlighted.
// ?format=dot returns the DOT source instead of SVG.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, res, err := s.solve(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	dot := nodelink.ToDOT(res.Graph, nodelink.Options{
		Path:      res.Path,
		Positions: req.Graph.Nodes,
		Directed:  req.Graph.Directed,
		Weights:   true,
	})
	w.Header().Set("X-Path-Status", res.Status.String())

	if r.URL.Query().Get("format") == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		_, _ = w.Write([]byte(dot))
		return
	}

	svg, err := nodelink.RenderSVG(r.Context(), dot)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render graph"))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) (*graph.Request, *solver.Result, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	req, err := graph.ReadRequest(body, graph.FormatJSON)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, nil, errors.New(errors.ErrCodeGraphTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, nil, err
	}
	res, err := s.runner.Solve(r.Context(), req)
	if err != nil {
		return nil, nil, err
	}
	return req, res, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)

	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		status, code, msg = http.StatusServiceUnavailable, errors.ErrCodeInternal, "request timed out"
	case code == "":
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		if code == errors.ErrCodeInternal && msg == err.Error() {
			msg = "internal error"
		}
	}

	writeJSON(w, status, errorResponse{
		Error:     msg,
		Code:      code,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
