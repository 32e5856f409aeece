package personaldata

import "path/filepath"

// Layout of the personal data root.
const (
	videoLibraryDir   = "video-library"
	videoLibraryFile  = "ai_video_library.html"
	reportsDir        = "video-reports"
	knowledgeBaseDir  = "knowledge-base"
	consolidatedFile  = "consolidated_ai_knowledge.md"
	exportsDir        = "exports"
	processingLogsDir = "processing-logs"
	configDir         = "config"
	backupsDir        = "backups"

	processingLogFile  = "processing.jsonl"
	processedIndexFile = "processed.db"
)

func (m *Manager) VideoLibraryPath() (string, error) {
	return m.sub(videoLibraryDir, videoLibraryFile)
}

func (m *Manager) VideoReportsDir() (string, error) {
	return m.sub(reportsDir)
}

func (m *Manager) KnowledgeBaseDir() (string, error) {
	return m.sub(knowledgeBaseDir)
}

func (m *Manager) ConsolidatedKBPath() (string, error) {
	dir, err := m.KnowledgeBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, consolidatedFile), nil
}

func (m *Manager) ExportsDir() (string, error) {
	return m.sub(exportsDir)
}

func (m *Manager) ProcessingLogsDir() (string, error) {
	return m.sub(processingLogsDir)
}

// ProcessingLogPath is the JSONL event log written by the video processor.
func (m *Manager) ProcessingLogPath() (string, error) {
	return m.sub(processingLogsDir, processingLogFile)
}

func (m *Manager) ConfigDir() (string, error) {
	return m.sub(configDir)
}

// ProcessedIndexPath is the SQLite file holding exact processed-video keys.
func (m *Manager) ProcessedIndexPath() (string, error) {
	return m.sub(configDir, processedIndexFile)
}

func (m *Manager) BackupsDir() (string, error) {
	return m.sub(backupsDir)
}
