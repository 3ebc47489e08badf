// FilePath: internal/repository/kv/kv.keys.go
package kv

import (
	"fmt"
	"time"

	"github.com/careloop/vitalhub/internal/models"
)

// Key layout. Patient identity and creation time are embedded in the key
// so prefix scans partition by entity kind and patient:
//
//	vitals:<patientID>:<unixNano>
//	alert:<patientID>:<unixNano>-<type>
const (
	vitalKeyspace = "vitals:"
	alertKeyspace = "alert:"
)

func vitalKey(patientID string, ts time.Time) string {
	return fmt.Sprintf("%s%s:%d", vitalKeyspace, patientID, ts.UnixNano())
}

func vitalPatientPrefix(patientID string) string {
	return vitalKeyspace + patientID + ":"
}

func alertKey(patientID string, ts time.Time, alertType models.AlertType) string {
	return fmt.Sprintf("%s%s:%d-%s", alertKeyspace, patientID, ts.UnixNano(), alertType)
}

func alertPatientPrefix(patientID string) string {
	return alertKeyspace + patientID + ":"
}
