package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/nimo-inventory/internal/inventory/entity"
	"github.com/bitfantasy/nimo-inventory/internal/inventory/repository"
)

// OrderService 订单服务
type OrderService struct {
	repo        *repository.OrderRepository
	productRepo *repository.ProductRepository
}

func NewOrderService(repo *repository.OrderRepository, productRepo *repository.ProductRepository) *OrderService {
	return &OrderService{repo: repo, productRepo: productRepo}
}

// OrderItemRequest 订单行项请求
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"omitempty,email"`
	Items         []OrderItemRequest `json:"order_items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}

// List 获取订单列表
func (s *OrderService) List(ctx context.Context, page, pageSize int, filters map[string]string) ([]entity.Order, int64, error) {
	return s.repo.FindAll(ctx, page, pageSize, filters)
}

// Get 获取订单详情
func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 创建订单。单价取下单时的商品单价，总额由行项汇总得出。
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	number, err := s.repo.GenerateNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:   number,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        entity.OrderStatusPending,
	}

	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		order.TotalAmount += product.Price * float64(item.Quantity)
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus 更新订单状态
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
