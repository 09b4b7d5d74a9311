package main

import (
	"context"
	"log"
	"os"
	"time"

	"meditime-chatbot-backend/config"
	"meditime-chatbot-backend/database"
	"meditime-chatbot-backend/models"
)

var defaultFaqs = []models.FaqEntry{
	{
		Texto:     "¿Qué es la aspirina?",
		Respuesta: "Es un analgésico y antiinflamatorio de uso común. Pregúntame por sus usos, efectos o interacciones.",
	},
	{
		Texto:     "¿Qué medicamentos conoces?",
		Respuesta: "Conozco los medicamentos del catálogo de MediTime. Escribe el nombre de uno y te cuento sobre él.",
	},
	{
		Texto:     "¿Cómo borro mi historial?",
		Respuesta: "Abre el menú (≡) y pulsa el botón ‘Limpiar historial’ para borrar todas tus consultas guardadas.",
	},
}

// Seeds the medication catalog from a JSON file plus the predefined
// questions. Existing records are preserved; only new ones are inserted.
func main() {
	path := "data/medicamentos.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Connect(config.Get()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.SeedMedications(ctx, path); err != nil {
		log.Fatalf("Seed error: %v", err)
	}

	if err := database.SeedFaqs(ctx, defaultFaqs); err != nil {
		log.Fatalf("Seed error: %v", err)
	}
}
