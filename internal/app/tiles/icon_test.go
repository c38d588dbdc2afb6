package tiles_test

import (
	"context"
	"testing"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/tilehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestModResourceFile_FirstUsableFile(t *testing.T) {
	fx := testutil.NewServiceFixture()
	contextID := primitive.NewObjectID()
	fx.Files.Add(contextID,
		models.StoredFile{FileName: ".", Size: 0, SortOrder: 1},
		models.StoredFile{FileName: "empty.pdf", Size: 0, MimeType: "application/pdf", SortOrder: 2},
		models.StoredFile{FileName: "data.bin", Size: 10, SortOrder: 3},
		models.StoredFile{FileName: "handout.pdf", Size: 2048, MimeType: "application/pdf", SortOrder: 4},
		models.StoredFile{FileName: "second.pdf", Size: 512, MimeType: "application/pdf", SortOrder: 5},
	)

	file, err := fx.Svc.ModResourceFile(context.Background(), contextID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file == nil {
		t.Fatal("expected a usable file")
	}
	// Placeholder, zero-size, and missing-MIME entries are skipped; the first
	// survivor wins, not the last.
	if file.FileName != "handout.pdf" {
		t.Errorf("got %q, want handout.pdf", file.FileName)
	}
}

func TestModResourceFile_NoUsableFile(t *testing.T) {
	fx := testutil.NewServiceFixture()
	contextID := primitive.NewObjectID()
	fx.Files.Add(contextID,
		models.StoredFile{FileName: ".", Size: 0},
		models.StoredFile{FileName: "untyped.xyz", Size: 5},
	)

	file, err := fx.Svc.ModResourceFile(context.Background(), contextID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file != nil {
		t.Errorf("expected nil, got %+v", file)
	}
}

func TestModResourceIconName(t *testing.T) {
	tests := []struct {
		name string
		file models.StoredFile
		want string
	}{
		{"pdf by mime", models.StoredFile{FileName: "a.pdf", Size: 1, MimeType: "application/pdf"}, "pdf"},
		{"docx aliases to doc", models.StoredFile{FileName: "a.docx", Size: 1, MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"}, "doc"},
		{"ods aliases to xls", models.StoredFile{FileName: "a.ods", Size: 1, MimeType: "application/vnd.oasis.opendocument.spreadsheet"}, "xls"},
		{"odp aliases to ppt", models.StoredFile{FileName: "a.odp", Size: 1, MimeType: "application/vnd.oasis.opendocument.presentation"}, "ppt"},
		{"png by mime", models.StoredFile{FileName: "shot.png", Size: 1, MimeType: "image/png"}, "png"},
		{"unrecognized mime falls back to extension", models.StoredFile{FileName: "report.docx", Size: 2048, MimeType: "application/octet-stream"}, "doc"},
		{"extension fallback without alias", models.StoredFile{FileName: "notes.csv", Size: 1, MimeType: "application/x-unknown"}, "csv"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := testutil.NewServiceFixture()
			contextID := primitive.NewObjectID()
			fx.Files.Add(contextID, tc.file)

			got, err := fx.Svc.ModResourceIconName(context.Background(), contextID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestModResourceIconName_EmptyWhenNoFile(t *testing.T) {
	fx := testutil.NewServiceFixture()

	got, err := fx.Svc.ModResourceIconName(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty icon name", got)
	}
}
