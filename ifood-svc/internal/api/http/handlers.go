package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"
	"ifood/ifood-svc/internal/service"
	"ifood/logger"

	"github.com/gorilla/mux"
)

type Services struct {
	Restaurants service.EntityServiceInterface[*dto.RestaurantDTO]
	Menus       service.EntityServiceInterface[*dto.MenuDTO]
	Dishes      service.EntityServiceInterface[*dto.DishDTO]
	Customers   service.EntityServiceInterface[*dto.CustomerDTO]
	Orders      service.EntityServiceInterface[*dto.OrderDTO]
	OrderItems  service.EntityServiceInterface[*dto.OrderItemDTO]
	Payments    service.EntityServiceInterface[*dto.PaymentDTO]
	OrderQR     service.OrderQRServiceInterface
}

type Handler struct {
	Services
	AppName string
	log     *logger.Logger
}

func NewHandler(services Services, appName string, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{Services: services, AppName: appName, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	registerResource(r, &resource[*dto.RestaurantDTO]{
		h: h, path: "restaurants", svc: h.Restaurants, paginated: true,
		newDTO: func() *dto.RestaurantDTO { return &dto.RestaurantDTO{} },
	})
	registerResource(r, &resource[*dto.MenuDTO]{
		h: h, path: "menus", svc: h.Menus, streamable: true,
		newDTO: func() *dto.MenuDTO { return &dto.MenuDTO{} },
	})
	registerResource(r, &resource[*dto.DishDTO]{
		h: h, path: "dishes", svc: h.Dishes, paginated: true,
		newDTO: func() *dto.DishDTO { return &dto.DishDTO{} },
	})
	registerResource(r, &resource[*dto.CustomerDTO]{
		h: h, path: "customers", svc: h.Customers, paginated: true,
		newDTO: func() *dto.CustomerDTO { return &dto.CustomerDTO{} },
	})

	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	registerResource(r, &resource[*dto.OrderDTO]{
		h: h, path: "orders", svc: h.Orders,
		newDTO:    func() *dto.OrderDTO { return &dto.OrderDTO{} },
		onCreated: h.linkQRCode,
	})
	registerResource(r, &resource[*dto.OrderItemDTO]{
		h: h, path: "order-items", svc: h.OrderItems, streamable: true,
		newDTO: func() *dto.OrderItemDTO { return &dto.OrderItemDTO{} },
	})
	registerResource(r, &resource[*dto.PaymentDTO]{
		h: h, path: "payments", svc: h.Payments, streamable: true,
		newDTO: func() *dto.PaymentDTO { return &dto.PaymentDTO{} },
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "ifood-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) linkQRCode(w http.ResponseWriter, orderID int64) {
	if h.OrderQR == nil {
		return
	}
	w.Header().Add("Link", fmt.Sprintf("<%s>; rel=\"qrcode\"", h.OrderQR.QRLink(orderID)))
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	if h.OrderQR == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.malformedBody(w, r, fmt.Errorf("invalid id %q", mux.Vars(r)["id"]))
		return
	}

	qr, err := h.OrderQR.QRCode(r.Context(), orderID)
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeError(w, r, "order", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
