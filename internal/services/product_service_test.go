package services_test

import (
	"fmt"
	"testing"

	"dapur/internal/models"
	"dapur/internal/repositories"
	"dapur/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "r1", Name: "Rendang", Price: decimal.NewFromFloat(15.00), StockStatus: models.StockInStock},
		{ID: "s1", Name: "Sate", Price: decimal.NewFromFloat(12.00), StockStatus: models.StockLowStock},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "r1", Name: "Rendang", Price: decimal.NewFromFloat(15.00)}

	// Test successful retrieval
	mockRepo.On("GetByID", "r1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("r1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Gulai", Price: decimal.NewFromFloat(18.50)}

	// Test successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	updatedProduct := &models.Product{ID: "r1", Name: "Rendang Daging", Price: decimal.NewFromFloat(16.00)}

	// Test successful update
	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure
	missing := &models.Product{ID: "99", Name: "NonExistent"}
	mockRepo.On("Update", missing).Return(fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	err = service.UpdateProduct(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateStockStatus(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	stored := &models.Product{ID: "s1", Name: "Sate", StockStatus: models.StockInStock}

	mockRepo.On("GetByID", "s1").Return(stored, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "s1" && p.StockStatus == models.StockSoldOut
	})).Return(nil).Once()

	product, err := service.UpdateStockStatus("s1", models.StockSoldOut)
	assert.NoError(t, err)
	assert.Equal(t, models.StockSoldOut, product.StockStatus)
	mockRepo.AssertExpectations(t)

	// Missing product surfaces the repository error.
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.UpdateStockStatus("99", models.StockSoldOut)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", "r1").Return(nil).Once()
	err := service.DeleteProduct("r1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure
	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	err = service.DeleteProduct("99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
