package utils

import (
	"fmt"
	"strings"

	"meditime-chatbot-backend/models"
)

// JoinNatural renders a list the way a person would say it:
// ["A","B","C"] becomes "A, B y C".
func JoinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	last := items[len(items)-1]
	return strings.Join(items[:len(items)-1], ", ") + " y " + last
}

// FormatMedicationField renders a single-field answer for the given
// intent, falling back to a "no data" sentence when the field is empty.
// It never fails; unknown intents render the full record.
func FormatMedicationField(med *models.Medication, intent models.MessageIntent) string {
	switch intent {
	case models.IntentPresentacion:
		if med.Presentacion != "" {
			return fmt.Sprintf("El %s se presenta como %s.", med.Nombre, med.Presentacion)
		}
		return fmt.Sprintf("No tengo datos de presentación para %s.", med.Nombre)

	case models.IntentUsos:
		if len(med.Usos) > 0 {
			return fmt.Sprintf("El %s se usa para %s.", med.Nombre, JoinNatural(med.Usos))
		}
		return fmt.Sprintf("No dispongo de información sobre los usos de %s.", med.Nombre)

	case models.IntentEfectos:
		if len(med.Efectos) > 0 {
			return fmt.Sprintf("Entre los efectos comunes de %s están %s.", med.Nombre, JoinNatural(med.Efectos))
		}
		return fmt.Sprintf("No tengo datos de efectos para %s.", med.Nombre)

	case models.IntentAdversos:
		if len(med.Adversos) > 0 {
			return fmt.Sprintf("Atención: %s puede causar %s.", med.Nombre, JoinNatural(med.Adversos))
		}
		return fmt.Sprintf("No cuento con información sobre efectos adversos de %s.", med.Nombre)

	case models.IntentInteracciones:
		if len(med.Interacciones) > 0 {
			return fmt.Sprintf("No mezcles %s con %s.", med.Nombre, JoinNatural(med.Interacciones))
		}
		return fmt.Sprintf("No hay registros de interacciones para %s.", med.Nombre)
	}

	return formatMedicationFull(med)
}

// formatMedicationFull concatenates every non-empty field in fixed
// order behind a greeting line naming the medication.
func formatMedicationFull(med *models.Medication) string {
	var parts []string

	if med.Presentacion != "" {
		parts = append(parts, fmt.Sprintf("Se presenta como %s.", med.Presentacion))
	}
	if len(med.Usos) > 0 {
		parts = append(parts, fmt.Sprintf("Suele utilizarse para %s.", JoinNatural(med.Usos)))
	}
	if len(med.Efectos) > 0 {
		parts = append(parts, fmt.Sprintf("Entre los efectos más frecuentes están %s.", JoinNatural(med.Efectos)))
	}
	if len(med.Adversos) > 0 {
		parts = append(parts, fmt.Sprintf("Atención: puede provocar %s.", JoinNatural(med.Adversos)))
	}
	if len(med.Interacciones) > 0 {
		parts = append(parts, fmt.Sprintf("Evita combinarlo con %s.", JoinNatural(med.Interacciones)))
	}

	return fmt.Sprintf("¡Hola! Te cuento sobre %s:\n%s", med.Nombre, strings.Join(parts, "\n"))
}
