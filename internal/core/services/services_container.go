package services

import (
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	portssvc "github.com/procurio/procure_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.CategoryRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo)

	return container
}
