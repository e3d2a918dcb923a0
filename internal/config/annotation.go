package config

// AnnotationConfig holds settings for extra lines in text reports.
type AnnotationConfig struct {
	AddFinalFEN bool // FEN of the position at the end of the best line
	AddHash     bool // Zobrist hash of the analysed position
	AddNodes    bool // number of tree nodes visited
	AddElapsed  bool // time taken by the search
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{
		AddNodes: true,
	}
}
