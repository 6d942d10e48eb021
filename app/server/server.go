package server

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/app/categories"
	"github.com/webpanel/deploy/app/images"
	"github.com/webpanel/deploy/app/products"
)

// New builds the route table and wraps it with request logging.
func New(
	log *logrus.Logger,
	category *categories.CategoryHandler,
	image *images.ImageHandler,
	product *products.ProductHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /categories", category.HandleCreate)
	mux.HandleFunc("GET /categories", category.HandleGetAll)
	mux.HandleFunc("GET /categories/{id}", category.HandleGetByID)
	mux.HandleFunc("PUT /categories/{id}", category.HandleUpdate)
	mux.HandleFunc("DELETE /categories/{id}", category.HandleDelete)

	mux.HandleFunc("POST /api/image", image.HandleCreate)
	mux.HandleFunc("GET /api/image", image.HandleGetAll)
	mux.HandleFunc("GET /api/image/{id}", image.HandleGetByID)
	mux.HandleFunc("PUT /api/image/{id}", image.HandleUpdate)
	mux.HandleFunc("DELETE /api/image/{id}", image.HandleDelete)

	mux.HandleFunc("POST /api/product", product.HandleCreate)
	mux.HandleFunc("GET /api/product", product.HandleGetAll)
	mux.HandleFunc("GET /api/product/{id}", product.HandleGetByID)
	mux.HandleFunc("DELETE /api/product/{id}", product.HandleDelete)

	return requestLogger(log, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": rec.status,
		}).Info("request completed")
	})
}
