package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/awmpietro/golang-logic-inference/internal/app"
	"github.com/awmpietro/golang-logic-inference/internal/logic"
	"github.com/awmpietro/golang-logic-inference/internal/transport/logicdto"
)

type Handler struct {
	svc app.LogicService
}

func NewHandler(svc app.LogicService) *Handler {
	return &Handler{svc: svc}
}

// Register mounts every operation on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/evaluate", h.Evaluate)
	mux.HandleFunc("/truth-table", h.TruthTable)
	mux.HandleFunc("/model", h.Model)
	mux.HandleFunc("/entails", h.Entails)
	mux.HandleFunc("/graph", h.Graph)
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var in logicdto.EvaluateRequest
	if !decode(w, r, &in) {
		return
	}

	var (
		v   bool
		err error
	)
	if in.FirstOrder != nil {
		v, err = h.svc.EvaluateFirstOrder(in.Formula, *in.FirstOrder)
	} else {
		v, err = h.svc.Evaluate(in.Formula, logic.Assignment(in.Assignment))
	}
	if err != nil {
		writeError(w, "evaluate failed", err)
		return
	}
	writeJSON(w, http.StatusOK, logicdto.EvaluateResponse{Formula: in.Formula, Value: v})
}

func (h *Handler) TruthTable(w http.ResponseWriter, r *http.Request) {
	var in logicdto.FormulaRequest
	if !decode(w, r, &in) {
		return
	}
	res, err := h.svc.TruthTable(in.Formula)
	if err != nil {
		writeError(w, "truth table failed", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Model(w http.ResponseWriter, r *http.Request) {
	var in logicdto.FormulaRequest
	if !decode(w, r, &in) {
		return
	}
	res, err := h.svc.FindModel(in.Formula)
	if err != nil {
		writeError(w, "model search failed", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) Entails(w http.ResponseWriter, r *http.Request) {
	var in logicdto.EntailRequest
	if !decode(w, r, &in) {
		return
	}
	rep, err := h.svc.Entails(in.Premises, in.Conclusion)
	if err != nil {
		writeError(w, "entailment failed", err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	var in logicdto.FormulaRequest
	if !decode(w, r, &in) {
		return
	}
	out, err := h.svc.Graph(in.Formula)
	if err != nil {
		writeError(w, "graph failed", err)
		return
	}
	writeJSON(w, http.StatusOK, logicdto.GraphResponse{Formula: in.Formula, DOT: out})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, msg string, err error) {
	writeJSON(w, logicdto.Status(err), logicdto.ErrorBody(msg, err))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
