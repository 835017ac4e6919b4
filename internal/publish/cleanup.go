package publish

import (
	"log"
	"os"
)

// CleanupDirectory removes a transient working directory and everything
// under it. Cleanup is best-effort: failures are logged as warnings and
// never propagated.
func CleanupDirectory(dirPath, label string) {
	if err := os.RemoveAll(dirPath); err != nil {
		log.Printf("Warning: error cleaning up %s directory %s: %v", label, dirPath, err)
		return
	}
	log.Printf("Cleaned up and removed %s directory: %s", label, dirPath)
}
