package service

import (
	"context"
	"fmt"

	"storefront/internal/apierror"
	"storefront/internal/dto"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// OrderService defines business operations for purchases. Creating an order
// resolves each product's current price and discount, computes the total
// server-side, and persists the order with its item lines.
type OrderService interface {
	GetAll(ctx context.Context) ([]dto.OrderResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error)
	GetByUser(ctx context.Context, userID uint) ([]dto.OrderResponse, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uint, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)

	// Model returns the full order with items and status preloaded, for
	// consumers that need more than the response shape (receipt rendering).
	Model(ctx context.Context, id uint) (*model.Order, error)
}

type orderService struct {
	repo        repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	statusRepo  repository.StatusRepository
	dispatcher  *worker.Dispatcher
}

func NewOrderService(
	repo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	statusRepo repository.StatusRepository,
	dispatcher *worker.Dispatcher,
) OrderService {
	return &orderService{
		repo:        repo,
		userRepo:    userRepo,
		productRepo: productRepo,
		statusRepo:  statusRepo,
		dispatcher:  dispatcher,
	}
}

func mapOrder(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:       o.ID,
		Total:    o.Total,
		StatusID: o.StatusID,
		UserID:   o.UserID,
		Items:    make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	if o.Status != nil {
		resp.Status = o.Status.Name
	}
	for _, it := range o.Items {
		item := dto.OrderItemResponse{ID: it.ID, ProductID: it.ProductID, Quantity: it.Quantity}
		if it.Product != nil {
			item.Product = it.Product.Name
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

// linePrice is the effective unit price after the product discount.
func linePrice(p *model.Product) decimal.Decimal {
	return p.Price.Mul(oneHundred.Sub(p.Discount)).Div(oneHundred)
}

func (s *orderService) GetAll(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, mapOrder(o))
	}
	return result, nil
}

func (s *orderService) Model(ctx context.Context, id uint) (*model.Order, error) {
	if id == 0 {
		return nil, apierror.BadRequest("invalid order id")
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apierror.NotFound("order not found")
	}
	return o, nil
}

func (s *orderService) GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	o, err := s.Model(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) GetByUser(ctx context.Context, userID uint) ([]dto.OrderResponse, error) {
	if userID == 0 {
		return nil, apierror.BadRequest("invalid user id")
	}
	list, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, mapOrder(o))
	}
	return result, nil
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if req.UserID == 0 {
		return nil, apierror.BadRequest("user id is required")
	}
	if len(req.Items) == 0 {
		return nil, apierror.BadRequest("order must contain at least one item")
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierror.NotFound("user not found")
	}

	status, err := s.statusRepo.FindByName(ctx, "pending")
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, apierror.Internal("order status table is not seeded")
	}

	total := decimal.Zero
	items := make([]model.Item, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return nil, apierror.BadRequest("item quantity must be at least 1")
		}
		p, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, apierror.NotFound(fmt.Sprintf("product %d not found", line.ProductID))
		}
		total = total.Add(linePrice(p).Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, model.Item{ProductID: p.ID, Quantity: line.Quantity})
	}

	o := &model.Order{
		Total:    total,
		StatusID: status.ID,
		UserID:   req.UserID,
		Items:    items,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		payload := worker.EmailJobPayload{
			ToEmail: user.Email,
			Subject: fmt.Sprintf("Order #%d confirmed", o.ID),
			Body:    fmt.Sprintf("Thanks for your purchase. Order total: %s", o.Total.StringFixed(2)),
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Warn().Err(err).Uint("order_id", o.ID).Msg("failed to enqueue order confirmation email")
		}
	}

	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	o, err := s.Model(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.StatusID == 0 {
		return nil, apierror.BadRequest("status id is required")
	}
	status, err := s.statusRepo.FindByID(ctx, req.StatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, apierror.NotFound("status not found")
	}
	o.StatusID = status.ID
	o.Status = status
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	resp := mapOrder(*o)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id uint) (bool, error) {
	if _, err := s.Model(ctx, id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}
