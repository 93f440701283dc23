package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateOutputDir vérifie de manière statique que le dossier de sortie est
// utilisable : le parent doit exister et être un répertoire.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateOutputDir() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	p := strings.TrimSpace(c.OutputDir)
	if p == "" || p == "." {
		// répertoire courant : toujours acceptable
		return nil, nil
	}

	if st, serr := os.Stat(p); serr == nil {
		if !st.IsDir() {
			return warnings, fmt.Errorf("le chemin de sortie configuré n'est pas un répertoire : %s", p)
		}
		return warnings, nil
	} else if !os.IsNotExist(serr) {
		return warnings, fmt.Errorf("erreur lors du test du dossier de sortie %s : %w", p, serr)
	}

	// le dossier sera créé à la première écriture ; on vérifie juste le parent
	parent := filepath.Dir(p)
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent du chemin de sortie n'existe pas : %s", parent))
			return warnings, nil
		}
		return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du chemin de sortie n'est pas un répertoire : %s", parent)
	}

	return warnings, nil
}
