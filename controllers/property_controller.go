package controllers

import (
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Bhavishya0149/Real-Real-Estate/config"
	"github.com/Bhavishya0149/Real-Real-Estate/dto"
	"github.com/Bhavishya0149/Real-Real-Estate/middleware"
	"github.com/Bhavishya0149/Real-Real-Estate/models"
	"github.com/Bhavishya0149/Real-Real-Estate/services"
	"github.com/Bhavishya0149/Real-Real-Estate/utils"
)

// CreateProperty registers a new listing. Only admins may create.
func CreateProperty(properties services.PropertyStore, addresses services.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !user.IsAdmin() {
			utils.RespondError(c, models.NewAPIError(403, "only admins can create properties"))
			return
		}

		var body dto.CreatePropertyDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now().UTC()
		address := models.Address{
			Street:    strings.TrimSpace(body.Address.Street),
			City:      strings.TrimSpace(body.Address.City),
			State:     strings.TrimSpace(body.Address.State),
			PinCode:   body.Address.PinCode,
			Country:   strings.TrimSpace(body.Address.Country),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := addresses.Create(c.Request.Context(), &address); err != nil {
			utils.RespondError(c, err)
			return
		}

		title := strings.TrimSpace(body.Title)
		property := models.Property{
			Title:        title,
			Slug:         utils.GenerateSlug(title),
			Description:  strings.TrimSpace(body.Description),
			PropertyType: models.PropertyType(strings.TrimSpace(body.PropertyType)),
			Status:       models.StatusForSale,
			Price:        body.Price,
			Area:         body.Area,
			Address:      address.ID,
			Amenities:    trimAll(body.Amenities),
			Location:     models.GeoPoint{Type: "Point", Coordinates: body.Coordinates},
			Owner:        user.ID,
			ListedFlag:   true,
			ListedAt:     now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := properties.Create(c.Request.Context(), &property); err != nil {
			utils.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, property)
	}
}

func GetAllProperties(properties services.PropertyStore, photos services.PhotoStore, videos services.VideoStore, addresses services.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := properties.FindAll(c.Request.Context())
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		views := make([]gin.H, 0, len(list))
		for i := range list {
			views = append(views, propertyView(c, &list[i], photos, videos, addresses))
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetPropertyByID(properties services.PropertyStore, photos services.PhotoStore, videos services.VideoStore, addresses services.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}
		property, err := properties.FindByID(c.Request.Context(), id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, propertyView(c, property, photos, videos, addresses))
	}
}

// propertyView resolves the address and media references the way the
// public endpoints present a listing.
func propertyView(c *gin.Context, property *models.Property, photos services.PhotoStore, videos services.VideoStore, addresses services.AddressStore) gin.H {
	view := gin.H{"property": property}
	if address, err := addresses.FindByID(c.Request.Context(), property.Address); err == nil {
		view["address"] = address
	}
	if items, err := photos.FindByProperty(c.Request.Context(), property.ID); err == nil {
		view["photos"] = items
	}
	if items, err := videos.FindByProperty(c.Request.Context(), property.ID); err == nil {
		view["videos"] = items
	}
	return view
}

// UpdateProperty applies a partial update. Runs behind VerifyOwnerOrAdmin,
// which already loaded the property.
func UpdateProperty(properties services.PropertyStore, addresses services.AddressStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		property := middleware.PropertyFromContext(c)

		var body dto.UpdatePropertyDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if body.Address != nil {
			address, err := addresses.FindByID(c.Request.Context(), property.Address)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			address.Street = strings.TrimSpace(body.Address.Street)
			address.City = strings.TrimSpace(body.Address.City)
			address.State = strings.TrimSpace(body.Address.State)
			address.PinCode = body.Address.PinCode
			address.Country = strings.TrimSpace(body.Address.Country)
			address.UpdatedAt = time.Now().UTC()
			if err := addresses.Update(c.Request.Context(), address); err != nil {
				utils.RespondError(c, err)
				return
			}
		}

		if body.Title != nil {
			property.Title = strings.TrimSpace(*body.Title)
			property.Slug = utils.GenerateSlug(property.Title)
		}
		if body.Description != nil {
			property.Description = strings.TrimSpace(*body.Description)
		}
		if body.PropertyType != nil {
			property.PropertyType = models.PropertyType(strings.TrimSpace(*body.PropertyType))
		}
		if body.Status != nil {
			property.Status = models.PropertyStatus(strings.TrimSpace(*body.Status))
		}
		if body.Price != nil {
			property.Price = *body.Price
		}
		if body.SecurityDeposit != nil {
			property.SecurityDeposit = *body.SecurityDeposit
		}
		if body.Area != nil {
			property.Area = *body.Area
		}
		if body.Amenities != nil {
			property.Amenities = trimAll(*body.Amenities)
		}
		if body.Coordinates != nil {
			property.Location = models.GeoPoint{Type: "Point", Coordinates: *body.Coordinates}
		}

		if err := properties.Update(c.Request.Context(), property); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, property)
	}
}

// DeleteProperty cascades through the media lifecycle. The response says
// whether any external objects were orphaned by failed deletes.
func DeleteProperty(media *services.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		property := middleware.PropertyFromContext(c)

		result, err := media.DeleteProperty(c.Request.Context(), property)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":        "property deleted successfully",
			"objectsDeleted": result.ObjectsDeleted,
			"orphaned":       result.Orphaned,
		})
	}
}

func UploadPropertyPhotos(media *services.MediaService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		property := middleware.PropertyFromContext(c)

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return
		}
		files := form.File["photos"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no photos uploaded"})
			return
		}

		maxBytes := int64(cfg.MaxPhotoSizeMB) << 20
		uploads := make([]services.Upload, 0, len(files))
		openFiles := make([]multipart.File, 0, len(files))
		defer func() {
			for _, f := range openFiles {
				_ = f.Close()
			}
		}()

		for _, fh := range files {
			if fh.Size > maxBytes {
				c.JSON(http.StatusBadRequest, gin.H{"error": "photo too large"})
				return
			}
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open uploaded file"})
				return
			}
			openFiles = append(openFiles, f)
			uploads = append(uploads, services.Upload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				SizeBytes:   fh.Size,
				Content:     f,
			})
		}

		created, err := media.AttachPhotos(c.Request.Context(), property, uploads)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func UploadPropertyVideo(media *services.MediaService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		property := middleware.PropertyFromContext(c)
		user := middleware.CurrentUser(c)

		fh, err := c.FormFile("video")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no video uploaded"})
			return
		}
		if fh.Size > int64(cfg.MaxVideoSizeMB)<<20 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "video too large"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open uploaded file"})
			return
		}
		defer f.Close()

		video, err := media.AttachVideo(c.Request.Context(), property, user.ID, services.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   fh.Size,
			Content:     f,
		})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, video)
	}
}

func DeletePropertyPhoto(media *services.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		photoID, err := bson.ObjectIDFromHex(c.Param("photoId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
			return
		}
		if err := media.DetachPhoto(c.Request.Context(), photoID); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "photo deleted successfully"})
	}
}

func DeletePropertyVideo(media *services.MediaService) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, err := bson.ObjectIDFromHex(c.Param("videoId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
			return
		}
		if err := media.DetachVideo(c.Request.Context(), videoID); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "video deleted successfully"})
	}
}

func IncrementViewCount(properties services.PropertyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}
		count, err := properties.IncrementViews(c.Request.Context(), id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"viewCount": count})
	}
}

// ToggleSaveProperty adds or removes the listing from the acting account's
// saved set. The saved set is a weak reference, not ownership.
func ToggleSaveProperty(users services.UserStore, properties services.PropertyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		propertyID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
			return
		}
		if _, err := properties.FindByID(c.Request.Context(), propertyID); err != nil {
			utils.RespondError(c, err)
			return
		}

		saved := false
		for _, id := range user.SavedProperties {
			if id == propertyID {
				saved = true
				break
			}
		}

		if saved {
			err = users.RemoveSavedProperty(c.Request.Context(), user.ID, propertyID)
		} else {
			err = users.AddSavedProperty(c.Request.Context(), user.ID, propertyID)
		}
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": !saved})
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
