package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promogen/internal/blob"
	"promogen/internal/contextutil"
)

// maxUploadBytes caps the parsed multipart form size for uploads.
const maxUploadBytes = 32 << 20

// UploadHandler handles client product uploads: a description file and an
// image file, stored under the client-upload prefix with a freshly minted
// product id.
type UploadHandler struct {
	blobs        blob.Store
	uploadPrefix string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(blobs blob.Store, uploadPrefix string) *UploadHandler {
	return &UploadHandler{
		blobs:        blobs,
		uploadPrefix: uploadPrefix,
	}
}

// UploadResponse represents the response after a successful upload.
type UploadResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ServeHTTP stores the uploaded description and image for a client,
// returning the generated product id.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	clientID := strings.TrimSpace(chi.URLParam(r, "clientID"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "client id is required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	descriptionFile, _, err := r.FormFile("description")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing description file or image file")
		return
	}
	defer func() {
		_ = descriptionFile.Close()
	}()

	imageFile, imageHeader, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing description file or image file")
		return
	}
	defer func() {
		_ = imageFile.Close()
	}()

	imageName, err := imageObjectName(imageHeader.Filename)
	if err != nil {
		logger.WarnContext(ctx, "unsupported image type", "filename", imageHeader.Filename)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	productID := uuid.New().String()
	base := fmt.Sprintf("%s%s/%s/", h.uploadPrefix, clientID, productID)

	if err := h.blobs.Put(ctx, base+"description.txt", "text/plain", descriptionFile); err != nil {
		logger.ErrorContext(ctx, "failed to store description", "client_id", clientID, "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Error uploading files")
		return
	}
	if err := h.blobs.Put(ctx, base+imageName, imageContentType(imageName), imageFile); err != nil {
		logger.ErrorContext(ctx, "failed to store image", "client_id", clientID, "product_id", productID, "error", err)
		writeError(w, http.StatusInternalServerError, "Error uploading files")
		return
	}

	logger.InfoContext(ctx, "stored client upload", "client_id", clientID, "product_id", productID)
	writeJSON(w, http.StatusOK, UploadResponse{
		Status:    "success",
		Message:   "Files uploaded successfully",
		ProductID: productID,
	})
}

// imageObjectName maps an uploaded image filename to the stored object
// name. Only PNG and JPEG uploads are accepted.
func imageObjectName(filename string) (string, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image.png", nil
	case ".jpg", ".jpeg":
		return "image0.jpg", nil
	default:
		return "", fmt.Errorf("unsupported image type %q, want .png or .jpg", path.Ext(filename))
	}
}

func imageContentType(objectName string) string {
	if strings.HasSuffix(objectName, ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
