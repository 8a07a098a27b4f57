package rest

import "github.com/gin-gonic/gin"

// NewApi registers the image routes on router
func NewApi(router *gin.Engine, images *ImageHandler) {
	router.POST("/upload", images.UploadImage)

	fotos := router.Group("/fotos")
	{
		fotos.GET("/:filename", images.GetImage)
		fotos.DELETE("/:filename", images.DeleteImage)
		fotos.PUT("/:filename", images.UpdateImage)
	}
}
