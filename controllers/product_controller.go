package controllers

import (
	"strconv"

	"nutcha-shop/libs"
	"nutcha-shop/models"
	"nutcha-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// @Summary Get all categories
// @Description Get list of all product categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.products.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load categories"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// @Summary Get all products
// @Description Get paginated list of active products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	response, err := ctrl.products.GetAllProducts(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	c.JSON(200, response)
}

// @Summary Get product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	product, err := ctrl.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product retrieved", Data: product})
}

// @Summary Create product
// @Description Create a product; accepts an optional image file uploaded to Cloudinary
// @Tags Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param category_id formData int true "Category id"
// @Param price formData number true "Price"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product data", Error: err.Error()})
		return
	}

	if url, ok := ctrl.uploadImage(c); ok {
		req.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	product, err := ctrl.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	c.JSON(201, models.Response{Success: true, Message: "Product created", Data: product})
}

// @Summary Update product
// @Tags Products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid product data", Error: err.Error()})
		return
	}

	if url, ok := ctrl.uploadImage(c); ok {
		req.ImageURL = url
	} else if c.IsAborted() {
		return
	}

	product, err := ctrl.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product updated", Data: product})
}

// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	if err := ctrl.products.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Product deleted"})
}

// uploadImage handles the optional "image" multipart field. The second return
// is true only when a file was uploaded; on upload failure the request is
// aborted with a 400.
func (ctrl *ProductController) uploadImage(c *gin.Context) (string, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		return "", false
	}

	localPath, err := libs.SaveUploadedFile(c, header, "uploads/products")
	if err != nil {
		c.AbortWithStatusJSON(400, gin.H{"success": false, "message": err.Error()})
		return "", false
	}

	url, err := libs.UploadToCloudinary(localPath)
	if err != nil {
		c.AbortWithStatusJSON(400, gin.H{"success": false, "message": "Image upload failed"})
		return "", false
	}
	return url, true
}
