package jobs

import (
	"log"

	"github.com/musicplanet/server/database"
	"github.com/musicplanet/server/models"
)

// ReconcileEnrollmentCounts compares each class's enrolled_students
// counter against the payments ledger and logs any drift. The ledger is
// the source of truth; the counter is a convenience that can lag if a
// commit ever partially fails.
func ReconcileEnrollmentCounts() {
	var classes []models.Class
	if err := database.DB.Find(&classes).Error; err != nil {
		log.Printf("🔥 Reconcile job failed to list classes: %v", err)
		return
	}

	drifted := 0
	for _, class := range classes {
		var ledgerCount int64
		if err := database.DB.Model(&models.Payment{}).Where("class_id = ?", class.ID).Count(&ledgerCount).Error; err != nil {
			log.Printf("🔥 Reconcile job failed to count payments for class %s: %v", class.ID, err)
			continue
		}

		if int64(class.EnrolledStudents) != ledgerCount {
			drifted++
			log.Printf("⚠️ Enrollment drift on class %s (%s): counter=%d ledger=%d",
				class.ID, class.Name, class.EnrolledStudents, ledgerCount)
		}
	}

	if drifted == 0 {
		log.Println("Enrollment counters match the payments ledger.")
	}
}
