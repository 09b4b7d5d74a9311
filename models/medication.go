package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medication is the read-only reference record for a single medication.
// Exactly one document exists per unique Nombre.
type Medication struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Nombre        string             `bson:"nombre" json:"nombre"`
	Presentacion  string             `bson:"presentacion,omitempty" json:"presentacion,omitempty"`
	Usos          []string           `bson:"usos,omitempty" json:"usos,omitempty"`
	Efectos       []string           `bson:"efectos,omitempty" json:"efectos,omitempty"`
	Adversos      []string           `bson:"adversos,omitempty" json:"adversos,omitempty"`
	Interacciones []string           `bson:"interacciones,omitempty" json:"interacciones,omitempty"`
}

// FaqEntry is a predefined question with its canned answer.
type FaqEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Texto     string             `bson:"texto" json:"texto"`
	Respuesta string             `bson:"respuesta" json:"respuesta"`
}

// HistoryEntry records one question/answer pair. Multi-part answers
// produce one entry per part. Entries are never mutated, only bulk-deleted.
type HistoryEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Pregunta  string             `bson:"pregunta" json:"pregunta"`
	Respuesta string             `bson:"respuesta" json:"respuesta"`
	Fecha     time.Time          `bson:"fecha" json:"fecha"`
}
