package lambdatransport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

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

type route func(h *Handler, body []byte) events.APIGatewayV2HTTPResponse

var routes = map[string]route{
	"/evaluate":    (*Handler).evaluate,
	"/truth-table": (*Handler).truthTable,
	"/model":       (*Handler).model,
	"/entails":     (*Handler).entails,
	"/graph":       (*Handler).graph,
}

// Handle dispatches an API Gateway request on its raw path.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	fn, ok := routes[strings.TrimSuffix(req.RawPath, "/")]
	if !ok {
		return jsonResp(http.StatusNotFound, map[string]any{"error": "unknown route", "details": req.RawPath}), nil
	}
	if m := req.RequestContext.HTTP.Method; m != "" && m != http.MethodPost {
		return jsonResp(http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"}), nil
	}

	body, err := readBody(req)
	if err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "invalid body", "details": err.Error()}), nil
	}
	return fn(h, body), nil
}

func (h *Handler) evaluate(body []byte) events.APIGatewayV2HTTPResponse {
	var in logicdto.EvaluateRequest
	if resp, ok := decode(body, &in); !ok {
		return resp
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
		return errorResp("evaluate failed", err)
	}
	return jsonResp(http.StatusOK, logicdto.EvaluateResponse{Formula: in.Formula, Value: v})
}

func (h *Handler) truthTable(body []byte) events.APIGatewayV2HTTPResponse {
	var in logicdto.FormulaRequest
	if resp, ok := decode(body, &in); !ok {
		return resp
	}
	res, err := h.svc.TruthTable(in.Formula)
	if err != nil {
		return errorResp("truth table failed", err)
	}
	return jsonResp(http.StatusOK, res)
}

func (h *Handler) model(body []byte) events.APIGatewayV2HTTPResponse {
	var in logicdto.FormulaRequest
	if resp, ok := decode(body, &in); !ok {
		return resp
	}
	res, err := h.svc.FindModel(in.Formula)
	if err != nil {
		return errorResp("model search failed", err)
	}
	return jsonResp(http.StatusOK, res)
}

func (h *Handler) entails(body []byte) events.APIGatewayV2HTTPResponse {
	var in logicdto.EntailRequest
	if resp, ok := decode(body, &in); !ok {
		return resp
	}
	rep, err := h.svc.Entails(in.Premises, in.Conclusion)
	if err != nil {
		return errorResp("entailment failed", err)
	}
	return jsonResp(http.StatusOK, rep)
}

func (h *Handler) graph(body []byte) events.APIGatewayV2HTTPResponse {
	var in logicdto.FormulaRequest
	if resp, ok := decode(body, &in); !ok {
		return resp
	}
	out, err := h.svc.Graph(in.Formula)
	if err != nil {
		return errorResp("graph failed", err)
	}
	return jsonResp(http.StatusOK, logicdto.GraphResponse{Formula: in.Formula, DOT: out})
}

func decode(body []byte, dst any) (events.APIGatewayV2HTTPResponse, bool) {
	if err := json.Unmarshal(body, dst); err != nil {
		return jsonResp(http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()}), false
	}
	return events.APIGatewayV2HTTPResponse{}, true
}

func readBody(req events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func errorResp(msg string, err error) events.APIGatewayV2HTTPResponse {
	return jsonResp(logicdto.Status(err), logicdto.ErrorBody(msg, err))
}

func jsonResp(status int, body any) events.APIGatewayV2HTTPResponse {
	b, _ := json.Marshal(body)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"content-type": "application/json"},
		Body:       string(b),
	}
}
