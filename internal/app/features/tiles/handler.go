// internal/app/features/tiles/handler.go
package tiles

import (
	"context"
	"io"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	"github.com/dalemusser/tilehub/internal/app/system/sessionstate"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ModuleResolver loads module records for the content and upload endpoints.
// The module store satisfies this.
type ModuleResolver interface {
	ModuleByID(ctx context.Context, courseID, moduleID primitive.ObjectID) (*models.CourseModule, error)
}

// PrefWriter persists per-user preference flags. The preference store
// satisfies this.
type PrefWriter interface {
	SetPref(ctx context.Context, userID primitive.ObjectID, name, value string) error
	UnsetPref(ctx context.Context, userID primitive.ObjectID, name string) error
}

// FileUploader stores a module content file. The file store satisfies this.
type FileUploader interface {
	Upload(ctx context.Context, backend storage.Store, contextID primitive.ObjectID, filename string, reader io.Reader, size int64, mimeType string) (models.StoredFile, error)
}

// Handler owns the tile display endpoints consumed by the course pages:
// per-course CSS, module info projections, rendered module content, and the
// session/preference writebacks from the client scripts.
type Handler struct {
	Svc     *tiles.Service
	Modules ModuleResolver
	Files   FileUploader
	Storage storage.Store
	Prefs   PrefWriter
	Session *sessionstate.Manager
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs a tiles Handler.
func NewHandler(svc *tiles.Service, modules ModuleResolver, files FileUploader, backend storage.Store, prefs PrefWriter, session *sessionstate.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Svc:     svc,
		Modules: modules,
		Files:   files,
		Storage: backend,
		Prefs:   prefs,
		Session: session,
		ErrLog:  errLog,
		Log:     logger,
	}
}
