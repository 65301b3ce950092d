package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// BackendURL retourne l'origine de l'API marketplace (source de vérité)
func BackendURL() string {
	url := os.Getenv("BACKEND_URL")
	if url == "" {
		url = "http://localhost:8081/api"
	}
	return url
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// FrontendOrigin est l'origine autorisée pour le CORS du navigateur
func FrontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return origin
}

// TokenFile retourne le chemin du fichier où le token de session est persisté
// (équivalent du localStorage du navigateur, clé fixe)
func TokenFile() string {
	if path := os.Getenv("TOKEN_FILE"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "farmlink", "token")
}
