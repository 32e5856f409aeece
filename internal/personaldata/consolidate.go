package personaldata

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// ReportSeparator joins reports in the consolidated knowledge base.
const ReportSeparator = "\n\n---\n\n"

// GenerateConsolidatedKB concatenates every report, in ListReports order,
// into the consolidated knowledge base file and returns its path.
// All reports are held in memory at once.
func (m *Manager) GenerateConsolidatedKB() (string, error) {
	reports, err := m.ListReports()
	if err != nil {
		return "", err
	}
	kbPath, err := m.ConsolidatedKBPath()
	if err != nil {
		return "", err
	}
	kbDir, err := m.KnowledgeBaseDir()
	if err != nil {
		return "", err
	}

	log.Printf("📚 Consolidating %d reports...", len(reports))

	parts := make([]string, 0, len(reports))
	for _, p := range reports {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("read report %s: %w", p, err)
		}
		parts = append(parts, string(data))
	}
	consolidated := strings.Join(parts, ReportSeparator)

	if err := os.MkdirAll(kbDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure knowledge base dir: %w", err)
	}
	if err := os.WriteFile(kbPath, []byte(consolidated), 0o644); err != nil {
		return "", fmt.Errorf("write knowledge base: %w", err)
	}

	log.Printf("✅ Consolidated knowledge base: %s", kbPath)
	log.Printf("   Size: %.2f MB", float64(len(consolidated))/1024/1024)
	return kbPath, nil
}
