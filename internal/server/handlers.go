package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-restyle/internal/decode"
	"github.com/jonathan/resume-restyle/internal/export"
	"github.com/jonathan/resume-restyle/internal/rendering"
	"github.com/jonathan/resume-restyle/internal/types"
)

// ExtractResponse is the body returned by POST /extract.
type ExtractResponse struct {
	UploadID   string              `json:"upload_id"`
	Record     types.ResumeRecord  `json:"record"`
	Confidence types.ConfidenceMap `json:"confidence"`
	TextLength int                 `json:"text_length"`
}

// RenderRequest is the body accepted by POST /render and POST /export.
// Either a catalog template name or inline markup must be supplied.
type RenderRequest struct {
	Template string             `json:"template" validate:"omitempty,max=64"`
	Markup   string             `json:"markup" validate:"required_without=Template"`
	Record   types.ResumeRecord `json:"record"`
	Format   string             `json:"format" validate:"omitempty,oneof=html txt text pdf docx"`
}

// RenderResponse is the body returned by POST /render.
type RenderResponse struct {
	Document string `json:"document"`
}

// CreateTemplateRequest is the body accepted by POST /templates.
type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required,max=64"`
	Content string `json:"content" validate:"required"`
}

// handleExtract decodes an uploaded resume and returns the extracted record.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	filename, content, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := decode.Decode(filename, content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, confidence, err := s.extractor.ExtractRecord(r.Context(), text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		UploadID:   uuid.NewString(),
		Record:     record,
		Confidence: confidence,
		TextLength: len(text),
	})
}

// handleListTemplates returns the template catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": s.store.List()})
}

// handleGetTemplate returns one template's markup.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	content, err := s.store.Get(r.PathValue("name"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, content)
}

// handleCreateTemplate registers a custom template.
func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Put(req.Name, req.Content); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// handleDeleteTemplate removes a custom template.
func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.PathValue("name")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRender substitutes a record into a template and returns the markup.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	document, err := s.renderDocument(&req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, RenderResponse{Document: document})
}

// handleExport substitutes a record into a template and streams the
// exported artifact.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := s.resolveFormat(req.Format)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	document, err := s.renderDocument(&req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	output, err := export.Export(r.Context(), s.renderer, document, format)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=resume.%s", format))
	if _, err := w.Write(output); err != nil {
		return
	}
}

// handleRun executes the full upload-to-artifact flow in one request.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	filename, content, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := s.resolveFormat(r.FormValue("format"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	text, err := decode.Decode(filename, content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, _, err := s.extractor.ExtractRecord(r.Context(), text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	document, err := s.renderDocument(&RenderRequest{
		Template: r.FormValue("template"),
		Record:   record,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	output, err := export.Export(r.Context(), s.renderer, document, format)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=resume.%s", format))
	if _, err := w.Write(output); err != nil {
		return
	}
}

// handleRunStream executes the full flow while streaming progress events.
func (s *Server) handleRunStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	runID := uuid.NewString()

	filename, content, err := s.readUpload(w, r)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteProgress(runID, "decode")
	text, err := decode.Decode(filename, content)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteProgress(runID, "extract")
	record, confidence, err := s.extractor.ExtractRecord(r.Context(), text)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteProgress(runID, "substitute")
	document, err := s.renderDocument(&RenderRequest{
		Template: r.FormValue("template"),
		Record:   record,
	})
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteEvent("result", map[string]any{ //nolint:errcheck
		"run_id":     runID,
		"record":     record,
		"confidence": confidence,
		"document":   document,
	})
	sse.WriteComplete(runID, "completed")
}

// renderDocument resolves the template markup and applies the record.
func (s *Server) renderDocument(req *RenderRequest) (string, error) {
	markup := req.Markup
	if markup == "" {
		name := req.Template
		if name == "" {
			name = "classic"
		}
		var err error
		markup, err = s.store.Get(name)
		if err != nil {
			return "", err
		}
	}
	return rendering.Apply(markup, req.Record)
}

// resolveFormat parses the requested format, defaulting to HTML.
func (s *Server) resolveFormat(value string) (export.Format, error) {
	if value == "" {
		return export.FormatHTML, nil
	}
	return export.ParseFormat(value)
}

// decodeJSON decodes and validates a JSON request body.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// readUpload extracts the uploaded resume file from a multipart request.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		return "", nil, fmt.Errorf("failed to parse upload: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("missing upload field %q: %w", "file", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return header.Filename, content, nil
}
