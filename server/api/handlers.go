// Package api implements the debug HTTP server's handlers: health,
// the symbolic OID table dump, and JSON<->BER encode/decode.
package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/keetanet/asn1ber/asn1value"
	"github.com/keetanet/asn1ber/ber"
	"github.com/keetanet/asn1ber/oid"
)

// Server holds the behavior flags handlers need; it carries no other
// state since the codec itself is stateless.
type Server struct {
	allowUndefined bool
}

// NewServer constructs a Server. allowUndefined is forwarded to
// asn1value.ToValue for every /encode request.
func NewServer(allowUndefined bool) *Server {
	return &Server{allowUndefined: allowUndefined}
}

// ErrorResponse is the JSON envelope every handler error uses.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EncodeRequest carries a host value (per asn1value's JSON surface) to
// be turned into BER bytes.
type EncodeRequest struct {
	Value json.RawMessage `json:"value"`
}

// EncodeResponse returns the BER encoding as base64.
type EncodeResponse struct {
	Ber string `json:"ber"`
}

// DecodeRequest carries BER bytes, base64-encoded, to be parsed back
// into a host value.
type DecodeRequest struct {
	Ber string `json:"ber"`
}

// DecodeResponse returns the decoded host value using asn1value's JSON
// tagged-object surface.
type DecodeResponse struct {
	Value json.RawMessage `json:"value"`
}

// OidEntry describes one row of the symbolic OID table.
type OidEntry struct {
	Name   string `json:"name"`
	Dotted string `json:"dotted"`
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleOids dumps the combined built-in + registered symbolic OID
// table.
func (s *Server) HandleOids(w http.ResponseWriter, r *http.Request) {
	all := oid.All()
	entries := make([]OidEntry, 0, len(all))
	for _, e := range all {
		entries = append(entries, OidEntry{Name: e.Name, Dotted: e.Dotted})
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleEncode adapts a JSON host value into BER bytes and returns them
// base64-encoded.
func (s *Server) HandleEncode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req EncodeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	host, err := asn1value.FromJSON(req.Value)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_host_value", err.Error())
		return
	}

	val, err := asn1value.ToValue(host, s.allowUndefined)
	if err != nil {
		respondCodecError(w, err)
		return
	}

	encoded, err := ber.Encode(val)
	if err != nil {
		respondCodecError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, EncodeResponse{Ber: base64.StdEncoding.EncodeToString(encoded)})
}

// HandleDecode parses base64 BER bytes and returns the decoded host
// value as JSON.
func (s *Server) HandleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}
	defer r.Body.Close()

	var req DecodeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json", fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.Ber)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_base64", fmt.Sprintf("failed to decode base64: %v", err))
		return
	}

	val, err := ber.Decode(raw)
	if err != nil {
		respondCodecError(w, err)
		return
	}

	host, err := asn1value.FromValue(val)
	if err != nil {
		respondCodecError(w, err)
		return
	}

	hostJSON, err := asn1value.ToJSON(host)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "json_encoding_failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, DecodeResponse{Value: hostJSON})
}

// respondCodecError maps a *ber.Error to a 422 with its typed error
// kind as the machine-readable code; any other error becomes a 500.
func respondCodecError(w http.ResponseWriter, err error) {
	if berErr, ok := err.(*ber.Error); ok {
		respondError(w, http.StatusUnprocessableEntity, string(berErr.Kind), berErr.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:     message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	})
}
