// internal/app/features/tiles/files.go
package tiles

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/gates"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// maxUploadBytes caps module content uploads at 100 MB.
const maxUploadBytes = 100 << 20

// HandleFileUpload attaches a file to a module's content area. Bytes go to
// the storage backend, metadata into the file store in enumeration order.
//
// POST /tiles/{courseID}/modules/{cmID}/files  (multipart field "file")
func (h *Handler) HandleFileUpload(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAnyRole(w, r, "Only teachers and admins may upload module files.",
		models.RoleAdmin, models.RoleTeacher)
	if !res.OK {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "courseID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "bad course id")
		return
	}
	moduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "cmID"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "bad module id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		uierrors.RenderBadRequest(w, r, "bad multipart form or file too large")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		uierrors.RenderBadRequest(w, r, `multipart field "file" is required`)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	mod, err := h.Modules.ModuleByID(ctx, courseID, moduleID)
	if err != nil {
		h.ErrLog.Internal(w, r, "file upload module lookup", err)
		return
	}
	if mod == nil {
		uierrors.RenderNotFound(w, r, "module not found")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	stored, err := h.Files.Upload(ctx, h.Storage, mod.ContextID, header.Filename, file, header.Size, contentType)
	if err != nil {
		h.ErrLog.Internal(w, r, "file upload", err)
		return
	}

	h.Log.Info("module file uploaded",
		zap.String("module_id", moduleID.Hex()),
		zap.String("file", stored.FileName),
		zap.Int64("size", stored.Size),
		zap.String("by", res.Name))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(stored)
}
