package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/extractor"
	"github.com/gradeskim/gradeskim/pkg/extractor/cascade"
	"github.com/gradeskim/gradeskim/pkg/scanner"
)

const maxUploadSize = 20 << 20 // 20MB

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	input, err := parseInput(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.Scanner.Scan(r.Context(), *input)

	if err != nil {
		if errors.Is(err, cascade.ErrNoText) {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}

		if errors.Is(err, scanner.ErrInvalidInput) || errors.Is(err, extractor.ErrUnsupported) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJson(w, toAnalysis(result))
}

func parseInput(r *http.Request) (*scanner.Input, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return nil, err
		}

		if text := r.FormValue("text"); text != "" {
			return &scanner.Input{Text: text}, nil
		}

		file, header, err := r.FormFile("file")

		if err != nil {
			return nil, errors.New("missing text or file")
		}

		defer file.Close()

		content, err := io.ReadAll(file)

		if err != nil {
			return nil, err
		}

		mediaType := header.Header.Get("Content-Type")

		if !extractor.SupportedType(mediaType) {
			return nil, extractor.ErrUnsupported
		}

		return &scanner.Input{
			File: &extractor.File{
				Name: header.Filename,

				Content:     content,
				ContentType: mediaType,
			},
		}, nil
	}

	var req AnalysisRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.New("missing text")
	}

	return &scanner.Input{Text: req.Text}, nil
}

func toAnalysis(result *scanner.Result) Analysis {
	analysis := Analysis{
		ExtractedText: result.ExtractedText,

		AIPercentage: result.Score,
		Reasoning:    result.Reason,

		SuggestedGrade: scanner.SuggestedGrade(result.Score),
	}

	for _, segment := range result.Segments {
		analysis.Segments = append(analysis.Segments, Segment{
			Text: segment.Text,
			IsAI: segment.AI,
		})
	}

	return analysis
}
