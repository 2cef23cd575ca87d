package service

import (
	"context"
	"fmt"
	"strings"

	"ifood/ifood-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

// Generate encodes a link to the order resource as a 256px PNG.
func (g DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/orders/%d", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

type orderLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type OrderQRService struct {
	orders    orderLookup
	qrEncoder QRGenerator
}

func NewOrderQRService(orders orderLookup, qr QRGenerator) *OrderQRService {
	return &OrderQRService{orders: orders, qrEncoder: qr}
}

// QRCode renders the code for an existing order, domain.ErrNotFound otherwise.
func (s *OrderQRService) QRCode(ctx context.Context, orderID int64) ([]byte, error) {
	exists, err := s.orders.Exists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.qrEncoder.Generate(orderID)
}

func (s *OrderQRService) QRLink(orderID int64) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
