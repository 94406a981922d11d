package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MiB

// storeUploadedFile writes the multipart file under a generated unique name
// and returns that name. Oversize files never reach the upload directory;
// multipart parsing may still spill large bodies to the OS temp dir.
func storeUploadedFile(c *gin.Context, dir string) (storedName, originalName string, ok bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "file is required"})
		return "", "", false
	}
	if file.Size > maxUploadSize {
		c.JSON(400, gin.H{"error": "file too large (max 10 MB)"})
		return "", "", false
	}

	storedName = uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, storedName)); err != nil {
		c.JSON(500, gin.H{"error": "save failed"})
		return "", "", false
	}
	return storedName, file.Filename, true
}

// ------------------- Photos -------------------

// GET /api/photos
func ListPhotos(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		photos, err := store.ListPhotos(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if photos == nil {
			photos = []Photo{}
		}
		c.JSON(200, photos)
	}
}

// POST /api/photos (multipart: file, caption?)
func UploadPhoto(store Store, dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		storedName, originalName, ok := storeUploadedFile(c, dir)
		if !ok {
			return
		}

		p := Photo{Filename: storedName, OriginalName: originalName}
		if caption := c.PostForm("caption"); caption != "" {
			p.Caption = &caption
		}

		created, err := store.CreatePhoto(c.Request.Context(), p)
		if err != nil {
			// no metadata row, no orphan file
			_ = os.Remove(filepath.Join(dir, storedName))
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		logAction(store, adminName(c), "upload_photo", storedName)
		c.JSON(200, created)
	}
}

// DELETE /api/photos/:id — removes the row and the file.
func DeletePhoto(store Store, dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		ctx := c.Request.Context()

		p, err := store.GetPhoto(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "photo not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if err := store.DeletePhoto(ctx, id); err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		_ = os.Remove(filepath.Join(dir, p.Filename))

		logAction(store, adminName(c), "delete_photo", "id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"success": true})
	}
}

// ------------------- Documents -------------------

// GET /api/documents
func ListDocuments(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := store.ListDocuments(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if docs == nil {
			docs = []Document{}
		}
		c.JSON(200, docs)
	}
}

// POST /api/documents (multipart: file, type)
func UploadDocument(store Store, dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docType := c.PostForm("type")
		if docType == "" {
			c.JSON(400, gin.H{"error": "type is required"})
			return
		}

		storedName, originalName, ok := storeUploadedFile(c, dir)
		if !ok {
			return
		}

		created, err := store.CreateDocument(c.Request.Context(), Document{
			Filename:     storedName,
			OriginalName: originalName,
			Type:         docType,
		})
		if err != nil {
			_ = os.Remove(filepath.Join(dir, storedName))
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		logAction(store, adminName(c), "upload_document", storedName)
		c.JSON(200, created)
	}
}

// DELETE /api/documents/:id
func DeleteDocument(store Store, dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))
		ctx := c.Request.Context()

		d, err := store.GetDocument(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "document not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if err := store.DeleteDocument(ctx, id); err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		_ = os.Remove(filepath.Join(dir, d.Filename))

		logAction(store, adminName(c), "delete_document", "id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"success": true})
	}
}

// ------------------- Serving -------------------

// safeFilename rejects anything that could escape the upload directory.
func safeFilename(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// GET /uploads/:filename
func ServeUpload(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("filename")
		if !safeFilename(name) {
			c.JSON(404, gin.H{"error": "file not found"})
			return
		}
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			c.JSON(404, gin.H{"error": "file not found"})
			return
		}
		c.File(path)
	}
}
