// Copyright 2025 The Desys Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command desysd exposes the connection solver as an HTTP service. The solve
// itself runs as a background unit of work so a slow plate mesh never blocks
// the request-handling goroutine pool beyond its own request.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/seismostudio/desysbackend-sub001/fem"
	"github.com/seismostudio/desysbackend-sub001/inp"
	"github.com/seismostudio/desysbackend-sub001/mdl"
	"github.com/seismostudio/desysbackend-sub001/msh"
)

// CORS allows the modeling front end (served from another origin) to call
// the solver endpoints
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SolveHandler runs one connection analysis per request
type SolveHandler struct {
	Cap mdl.CapacitySolver
}

// Solve decodes a ConnectionConfig, runs the analysis in the background and
// replies with the full analysis result (or 422 when the solve is invalid)
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var cfg inp.ConnectionConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	cfg.SetDefault()
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	plate, beam, column, haunch := msh.ForConnection(&cfg)
	analysis := fem.NewAnalysis(&cfg, h.Cap, plate, beam, column, haunch)
	res := <-analysis.RunAsync()
	w.Header().Set("Content-Type", "application/json")
	if !res.IsValid {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	json.NewEncoder(w).Encode(res)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}
	addr := os.Getenv("DESYSD_ADDR")
	if addr == "" {
		addr = ":8090"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	solveH := &SolveHandler{Cap: mdl.NewConnectionCapacity()}
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/tools/connection/solve", solveH.Solve).Methods("POST", "OPTIONS")
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	server := &http.Server{Addr: addr, Handler: CORS(router)}
	go func() {
		log.Printf("desysd listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
	log.Println("desysd stopped")
}
