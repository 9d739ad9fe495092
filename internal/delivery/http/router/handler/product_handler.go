package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"galassia/internal/delivery/http/response"
	"galassia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		uc: uc,
	}
}

// List handles the catalog listing request, optionally filtered by category.
func (h *ProductHandler) List(c echo.Context) error {
	category := c.QueryParam("category")

	var err error
	var products []*productView
	if category == "" {
		list, listErr := h.uc.ListProducts(c.Request().Context())
		products, err = toProductViews(list), listErr
	} else {
		list, listErr := h.uc.ListProductsByCategory(c.Request().Context(), category)
		products, err = toProductViews(list), listErr
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// ListByCategory handles the category-scoped catalog listing request.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.uc.ListProductsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

// Get handles the single product request.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}

// Featured handles the featured product list request.
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.uc.GetFeaturedProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Featured products retrieved successfully")
}

// Recommendations handles the random recommendation request.
func (h *ProductHandler) Recommendations(c echo.Context) error {
	count, _ := strconv.Atoi(c.QueryParam("count"))

	products, err := h.uc.GetRecommendations(c.Request().Context(), count)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Recommendations retrieved successfully")
}

// Create handles the admin product creation request. The payload is a
// multipart form so an image file can ride along with the fields.
func (h *ProductHandler) Create(c echo.Context) error {
	input, file, err := bindProductInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}
	if file != nil {
		defer file.Close()
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// Update handles the admin product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	input, file, err := bindProductInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}
	if file != nil {
		defer file.Close()
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// Delete handles the admin product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

type setFeaturedRequest struct {
	Featured bool `json:"featured"`
}

// SetFeatured handles the admin featured-flag toggle request.
func (h *ProductHandler) SetFeatured(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req setFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid featured input")
	}

	product, err := h.uc.SetFeatured(c.Request().Context(), id, req.Featured)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// bindProductInput reads the product fields from the multipart form,
// including the optional image file. The returned file, when non-nil, must be
// closed by the caller after the usecase consumed it.
func bindProductInput(c echo.Context) (usecase.ProductInput, multipart.File, error) {
	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return usecase.ProductInput{}, nil, errors.New("invalid price")
	}

	discount, err := formInt(c, "discount", 0)
	if err != nil {
		return usecase.ProductInput{}, nil, errors.New("invalid discount")
	}
	if discount < 0 || discount > 100 {
		return usecase.ProductInput{}, nil, errors.New("discount must be between 0 and 100")
	}

	quantity, err := formInt(c, "quantity", 0)
	if err != nil || quantity < 0 {
		return usecase.ProductInput{}, nil, errors.New("invalid quantity")
	}

	input := usecase.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Discount:    discount,
		Quantity:    quantity,
		Category:    c.FormValue("category"),
		IsFeatured:  c.FormValue("isFeatured") == "true",
		ImageURL:    c.FormValue("imageUrl"),
	}

	if input.Name == "" {
		return usecase.ProductInput{}, nil, errors.New("name is required")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No file attached; the imageUrl field, possibly empty, is used as-is.
		return input, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return usecase.ProductInput{}, nil, errors.New("failed to read image file")
	}

	input.ImageFile = file
	input.ImageFilename = fileHeader.Filename

	return input, file, nil
}

func formInt(c echo.Context, field string, fallback int) (int, error) {
	raw := c.FormValue(field)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
