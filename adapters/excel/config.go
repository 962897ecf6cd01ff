package excel

// DesignConfig locates a design matrix saved as a spreadsheet
type DesignConfig struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"` // ignored for csv
}

// DefaultDesignConfig returns defaults for reading path
func DefaultDesignConfig(path string) DesignConfig {
	return DesignConfig{
		FilePath: path,
		Sheet:    "Sheet1",
	}
}
