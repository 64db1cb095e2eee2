package platform

import (
	"encoding/json"
	"fmt"

	"delicious-bites/internal/logger"
	"delicious-bites/internal/menu"
)

// restaurantID identifies this restaurant on external delivery platforms.
const restaurantID = "delicious_bites_001"

// DeliveryPlatform is the capability our system expects from an external
// delivery marketplace.
type DeliveryPlatform interface {
	PublishMenuItem(item menu.Component) bool
	AcceptOrder(orderID string, amount float64) bool
	PlatformName() string
}

// uberEatsAPI mimics the vendor surface: JSON menu payloads and cent prices.
type uberEatsAPI struct {
	log *logger.Logger
}

func (u *uberEatsAPI) AddMenuItem(jsonData string) bool {
	u.log.Info("ubereats_menu_item", "Menu item published", "", map[string]interface{}{
		"payload": jsonData,
	})
	return true
}

func (u *uberEatsAPI) CreateOrder(restaurant string, priceCents int) bool {
	if priceCents <= 0 {
		return false
	}
	u.log.Info("ubereats_order", "Order accepted", "", map[string]interface{}{
		"restaurant":  restaurant,
		"price_cents": priceCents,
	})
	return true
}

// UberEatsAdapter adapts the UberEats API to the DeliveryPlatform capability.
type UberEatsAdapter struct {
	api *uberEatsAPI
}

// NewUberEatsAdapter creates an UberEats-backed platform.
func NewUberEatsAdapter(log *logger.Logger) *UberEatsAdapter {
	return &UberEatsAdapter{api: &uberEatsAPI{log: log}}
}

func (a *UberEatsAdapter) PublishMenuItem(item menu.Component) bool {
	payload, err := json.Marshal(map[string]interface{}{
		"dish_name":     item.Name(),
		"price_usd":     item.Price(),
		"category":      "main",
		"restaurant_id": restaurantID,
	})
	if err != nil {
		return false
	}
	return a.api.AddMenuItem(string(payload))
}

func (a *UberEatsAdapter) AcceptOrder(orderID string, amount float64) bool {
	return a.api.CreateOrder(restaurantID, int(amount*100))
}

func (a *UberEatsAdapter) PlatformName() string {
	return "UberEats"
}

// doorDashAPI mimics the vendor surface: per-field product registration.
type doorDashAPI struct {
	log *logger.Logger
}

func (d *doorDashAPI) RegisterProduct(storeID, name string, price float64) bool {
	d.log.Info("doordash_product", "Product registered", "", map[string]interface{}{
		"store_id": storeID,
		"name":     name,
		"price":    price,
	})
	return true
}

func (d *doorDashAPI) SubmitOrder(storeID, externalRef string, total float64) bool {
	if total <= 0 {
		return false
	}
	d.log.Info("doordash_order", "Order submitted", "", map[string]interface{}{
		"store_id":     storeID,
		"external_ref": externalRef,
		"total":        total,
	})
	return true
}

// DoorDashAdapter adapts the DoorDash API to the DeliveryPlatform capability.
type DoorDashAdapter struct {
	api *doorDashAPI
}

// NewDoorDashAdapter creates a DoorDash-backed platform.
func NewDoorDashAdapter(log *logger.Logger) *DoorDashAdapter {
	return &DoorDashAdapter{api: &doorDashAPI{log: log}}
}

func (a *DoorDashAdapter) PublishMenuItem(item menu.Component) bool {
	return a.api.RegisterProduct(restaurantID, item.Name(), item.Price())
}

func (a *DoorDashAdapter) AcceptOrder(orderID string, amount float64) bool {
	return a.api.SubmitOrder(restaurantID, orderID, amount)
}

func (a *DoorDashAdapter) PlatformName() string {
	return "DoorDash"
}

// glovoAPI mimics the vendor surface: catalog lines and euro-cent totals.
type glovoAPI struct {
	log *logger.Logger
}

func (g *glovoAPI) UploadCatalogLine(line string) bool {
	g.log.Info("glovo_catalog", "Catalog line uploaded", "", map[string]interface{}{
		"line": line,
	})
	return true
}

func (g *glovoAPI) BookCourier(orderRef string, totalCents int) bool {
	if totalCents <= 0 {
		return false
	}
	g.log.Info("glovo_courier", "Courier booked", "", map[string]interface{}{
		"order_ref":   orderRef,
		"total_cents": totalCents,
	})
	return true
}

// GlovoAdapter adapts the Glovo API to the DeliveryPlatform capability.
type GlovoAdapter struct {
	api *glovoAPI
}

// NewGlovoAdapter creates a Glovo-backed platform.
func NewGlovoAdapter(log *logger.Logger) *GlovoAdapter {
	return &GlovoAdapter{api: &glovoAPI{log: log}}
}

func (a *GlovoAdapter) PublishMenuItem(item menu.Component) bool {
	line := fmt.Sprintf("%s|%s|%.2f", restaurantID, item.Name(), item.Price())
	return a.api.UploadCatalogLine(line)
}

func (a *GlovoAdapter) AcceptOrder(orderID string, amount float64) bool {
	return a.api.BookCourier(orderID, int(amount*100))
}

func (a *GlovoAdapter) PlatformName() string {
	return "Glovo"
}

// NewPlatform selects a delivery platform by name.
func NewPlatform(name string, log *logger.Logger) (DeliveryPlatform, error) {
	switch name {
	case "ubereats":
		return NewUberEatsAdapter(log), nil
	case "doordash":
		return NewDoorDashAdapter(log), nil
	case "glovo":
		return NewGlovoAdapter(log), nil
	default:
		return nil, fmt.Errorf("unknown delivery platform: %q", name)
	}
}
