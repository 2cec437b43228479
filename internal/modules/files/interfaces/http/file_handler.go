package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/saransh1220/html-drop/internal/modules/files/application"
	"github.com/saransh1220/html-drop/internal/modules/files/domain"
)

const viewerPage = `<!DOCTYPE html>
<html>
<head><title>Dynamic HTML Viewer</title></head>
<body>%s</body>
</html>`

// FileHandler serves the viewer and upload endpoints.
type FileHandler struct {
	service *application.FileService
}

func NewFileHandler(service *application.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// View renders a stored file as an HTML page. The read path is
// deliberately unauthenticated: anyone who can reach the endpoint can read
// any file in the folder by name. All outcomes, including failures, are a
// 200 with an informational HTML body.
func (h *FileHandler) View(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	name := r.URL.Query().Get("fileName")
	if name == "" {
		fmt.Fprint(w, "No file name provided")
		return
	}

	content, err := h.service.Fetch(r.Context(), name)
	if errors.Is(err, domain.ErrFileNotFound) {
		fmt.Fprint(w, "File not found")
		return
	}
	if err != nil {
		log.Printf("View: fetch %q: %v", name, err)
		fmt.Fprintf(w, "Error: %v", err)
		return
	}

	// Stored content goes into the page verbatim, unescaped.
	fmt.Fprintf(w, viewerPage, content)
}

// Upload stores the posted fileContent as a new text/html file. All
// failures share one body shape, "Error: <detail>", with the status code
// carrying the failure kind.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	scriptKey := r.FormValue("scriptKey")
	fileName := r.FormValue("fileName")
	fileContent := r.FormValue("fileContent")

	file, err := h.service.Upload(r.Context(), scriptKey, fileName, fileContent)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrMissingParameters):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrUnauthorized):
			status = http.StatusUnauthorized
		default:
			log.Printf("Upload: %q: %v", fileName, err)
		}
		http.Error(w, fmt.Sprintf("Error: %v", err), status)
		return
	}

	w.WriteHeader(http.StatusCreated)
	fmt.Fprintf(w, "File uploaded successfully. File ID: %s", file.ID)
}
