package handler

import (
	"github.com/bridallink/backend/internal/application/budget"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget endpoints
type BudgetHandler struct {
	BaseHandler
	service *budget.Service
}

// NewBudgetHandler creates a budget handler
func NewBudgetHandler(service *budget.Service) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// RegisterRoutes registers budget routes
func (h *BudgetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/budget")
	{
		g.GET("/expenses", h.ListExpenses)
		g.POST("/expenses", h.CreateExpense)
		g.GET("/expenses/:id", h.GetExpense)
		g.PATCH("/expenses/:id", h.UpdateExpense)
		g.DELETE("/expenses/:id", h.DeleteExpense)

		g.GET("/categories", h.ListCategories)
		g.POST("/categories", h.CreateCategory)
		g.PUT("/categories/:id/allocation", h.SetAllocation)

		g.GET("/totals", h.GetTotals)
		g.PUT("/totals", h.SetTotals)
		g.GET("/summary", h.GetSummary)
	}
}

// ListExpenses returns all expenses
func (h *BudgetHandler) ListExpenses(c *gin.Context) {
	h.Success(c, h.service.ListExpenses(c.Request.Context()))
}

// GetExpense returns one expense
func (h *BudgetHandler) GetExpense(c *gin.Context) {
	expense, err := h.service.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// CreateExpense adds a manual expense
func (h *BudgetHandler) CreateExpense(c *gin.Context) {
	var req budget.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	expense, err := h.service.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// UpdateExpense applies a partial expense update
func (h *BudgetHandler) UpdateExpense(c *gin.Context) {
	var req budget.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	expense, err := h.service.UpdateExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// DeleteExpense removes an expense
func (h *BudgetHandler) DeleteExpense(c *gin.Context) {
	if err := h.service.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListCategories returns all budget categories
func (h *BudgetHandler) ListCategories(c *gin.Context) {
	h.Success(c, h.service.ListCategories(c.Request.Context()))
}

type createCategoryRequest struct {
	Name      string          `json:"name" binding:"required"`
	Allocated decimal.Decimal `json:"allocated"`
}

// CreateCategory adds a custom category
func (h *BudgetHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), req.Name, req.Allocated)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

type setAllocationRequest struct {
	Allocated decimal.Decimal `json:"allocated" binding:"required"`
}

// SetAllocation updates a category's allocated amount
func (h *BudgetHandler) SetAllocation(c *gin.Context) {
	var req setAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	category, err := h.service.SetCategoryAllocation(c.Request.Context(), c.Param("id"), req.Allocated)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// GetTotals returns the overall budget figure
func (h *BudgetHandler) GetTotals(c *gin.Context) {
	h.Success(c, h.service.GetTotals(c.Request.Context()))
}

type setTotalsRequest struct {
	TotalBudget decimal.Decimal `json:"totalBudget" binding:"required"`
}

// SetTotals replaces the overall budget figure
func (h *BudgetHandler) SetTotals(c *gin.Context) {
	var req setTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	totals, err := h.service.SetTotalBudget(c.Request.Context(), req.TotalBudget)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, totals)
}

// GetSummary returns the per-category spending report
func (h *BudgetHandler) GetSummary(c *gin.Context) {
	h.Success(c, h.service.GetSummary(c.Request.Context()))
}
