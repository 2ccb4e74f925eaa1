package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"waiterman/pos-svc/internal/backend"

	"github.com/skip2/go-qrcode"
)

const pngDataURIPrefix = "data:image/png;base64,"

// DefaultQRGenerator renders the customer self-order link for a table.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableID string) ([]byte, error) {
	return qrcode.Encode(g.URL(tableID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) URL(tableID string) string {
	return fmt.Sprintf("%s/order/%s", strings.TrimRight(g.BaseURL, "/"), tableID)
}

type QRService struct {
	tables    TableQRBackend
	generator QRGenerator
}

func NewQRService(tables TableQRBackend, generator QRGenerator) *QRService {
	return &QRService{tables: tables, generator: generator}
}

var _ QRInterface = (*QRService)(nil)

// TablePNG prefers the PNG the backend stored for the table and renders one
// locally when the backend has none or sent something unreadable.
func (s *QRService) TablePNG(ctx context.Context, sess *backend.Session, tableID string) ([]byte, error) {
	qrURL, err := s.tables.TableQR(ctx, sess, tableID)
	if err != nil {
		return nil, err
	}
	if png, ok := decodePNGDataURI(qrURL); ok {
		return png, nil
	}
	return s.generator.Generate(tableID)
}

func decodePNGDataURI(uri string) ([]byte, bool) {
	if !strings.HasPrefix(uri, pngDataURIPrefix) {
		return nil, false
	}
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, pngDataURIPrefix))
	if err != nil || len(png) == 0 {
		return nil, false
	}
	return png, true
}
