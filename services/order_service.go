package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"exhibitor-portal/config"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
)

// DefaultSection is stamped on orders placed without one, matching the
// floor plan most shows run with.
const DefaultSection = "Main Floor"

type OrderService struct {
	orderRepo *repositories.OrderRepository
	email     *models.EmailService
}

func NewOrderService(client repositories.SpreadsheetClient, email *models.EmailService) *OrderService {
	return &OrderService{
		orderRepo: repositories.NewOrderRepository(client),
		email:     email,
	}
}

// ListBoothOrders returns the session booth's orders, served from the
// short-TTL cache when warm.
func (s *OrderService) ListBoothOrders(ctx context.Context, session models.Session) ([]models.Order, error) {
	key := ordersCacheKey(session.BoothNumber)

	var cached []models.Order
	if models.CacheGet(ctx, key, &cached) {
		return cached, nil
	}

	orders, err := s.orderRepo.ListOrdersForBooth(ctx, config.AppConfig.SheetID, session.BoothNumber)
	if err != nil {
		return nil, err
	}

	models.CacheSet(ctx, key, orders, config.AppConfig.OrdersCacheTTL)
	return orders, nil
}

// PlaceOrder validates, stamps session identity, and runs the dual write.
// The section copy's outcome comes back in the result; the notification
// email is best effort and never fails the order.
func (s *OrderService) PlaceOrder(ctx context.Context, session models.Session, req models.PlaceOrderRequest) (*models.Order, *repositories.AddOrderResult, error) {
	if strings.TrimSpace(req.Item) == "" {
		return nil, nil, errors.New("item is required")
	}
	if req.Quantity < 1 {
		return nil, nil, errors.New("quantity must be at least 1")
	}

	section := strings.TrimSpace(req.Section)
	if section == "" {
		section = DefaultSection
	}

	order := &models.Order{
		BoothNumber:   session.BoothNumber,
		Section:       section,
		ExhibitorName: session.ExhibitorName,
		Item:          strings.TrimSpace(req.Item),
		Color:         strings.TrimSpace(req.Color),
		Quantity:      req.Quantity,
		Status:        models.StatusInProcess,
		Type:          models.TypeNewOrder,
		Comments:      req.Comments,
		User:          session.User,
	}

	result, err := s.orderRepo.AddOrder(ctx, config.AppConfig.SheetID, order)
	if err != nil {
		return nil, nil, err
	}

	models.CacheDelete(ctx, ordersCacheKey(session.BoothNumber))

	if s.email != nil && config.AppConfig.NotifyEmail != "" {
		if err := s.email.SendOrderNotification(config.AppConfig.NotifyEmail, *order); err != nil {
			log.Printf("Order notification failed: %v", err)
		}
	}

	return order, result, nil
}

// FindOrder looks one order up by its natural key.
func (s *OrderService) FindOrder(ctx context.Context, worksheet, booth, item, color string) (*models.Order, error) {
	return s.orderRepo.FindOrder(ctx, config.AppConfig.SheetID, worksheet, booth, item, color)
}

// ListWorksheetOrders lists every order on one worksheet (staff view).
func (s *OrderService) ListWorksheetOrders(ctx context.Context, worksheet string) ([]models.Order, error) {
	if strings.TrimSpace(worksheet) == "" {
		worksheet = repositories.MasterWorksheet
	}
	return s.orderRepo.ListOrders(ctx, config.AppConfig.SheetID, worksheet)
}

// UpdateStatus rewrites the status of the natural-key row on the given
// worksheet, recording who changed it and when. Returns false when no row
// matches.
func (s *OrderService) UpdateStatus(ctx context.Context, session models.Session, req models.UpdateStatusRequest) (bool, error) {
	updated, err := s.orderRepo.UpdateStatus(ctx, config.AppConfig.SheetID,
		req.Worksheet, req.BoothNumber, req.Item, req.Color, req.Status, session.User)
	if err != nil {
		return false, err
	}
	if updated {
		models.CacheDelete(ctx, ordersCacheKey(req.BoothNumber))
	}
	return updated, nil
}

// DeleteOrder removes the session booth's order, section sheet first.
func (s *OrderService) DeleteOrder(ctx context.Context, session models.Session, req models.DeleteOrderRequest) (bool, error) {
	deleted, err := s.orderRepo.DeleteOrder(ctx, config.AppConfig.SheetID,
		session.BoothNumber, req.Item, req.Color, req.Section)
	if err != nil {
		return false, err
	}
	if deleted {
		models.CacheDelete(ctx, ordersCacheKey(session.BoothNumber))
	}
	return deleted, nil
}

// Refresh drops this booth's cached reads plus the shared catalog entries,
// forcing the next loads back to the spreadsheet.
func (s *OrderService) Refresh(ctx context.Context, session models.Session) {
	models.CacheDelete(ctx, ordersCacheKey(session.BoothNumber))
	models.CacheDelete(ctx, "catalog:*")
}

func ordersCacheKey(booth string) string {
	return fmt.Sprintf("orders:%s", booth)
}
