package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/vark-assess/backend/internal/assessment"
	"github.com/vark-assess/backend/internal/classifier"
	"github.com/vark-assess/backend/internal/config"
	"github.com/vark-assess/backend/internal/store"
)

func main() {
	cfg := config.FromEnv()

	// Resolve the session store backend once at startup
	sessionStore, err := store.Open(context.Background())
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	cls := classifier.New()

	service := assessment.NewService(sessionStore, cls)
	handler := assessment.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/assessment/vark").Subrouter()

	api.HandleFunc("/start", handler.Start).Methods("POST")
	api.HandleFunc("/respond", handler.Respond).Methods("POST")
	api.HandleFunc("/sessions/{id}", handler.GetSession).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
