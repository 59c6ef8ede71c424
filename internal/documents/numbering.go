package documents

import (
	"fmt"

	"stolarija-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextNumber: dodjeljuje sljedeći redni broj za tip dokumenta.
// Red brojača se zaključava (SELECT ... FOR UPDATE) unutar transakcije
// u kojoj se dokument i sprema, pa dva istovremena kreiranja ne mogu
// dobiti isti broj.
func NextNumber(tx *gorm.DB, docType models.DocumentType) (int, error) {
	var counter models.DocumentCounter
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "type = ?", docType).Error; err != nil {
		return 0, fmt.Errorf("brojač za tip %s nije pronađen: %w", docType, err)
	}

	counter.LastNumber++
	if err := tx.Save(&counter).Error; err != nil {
		return 0, fmt.Errorf("brojač za tip %s se ne može ažurirati: %w", docType, err)
	}

	return counter.LastNumber, nil
}
