package environment

import "os"

// GetMongoURI returns the MongoDB connection string.
func GetMongoURI() string {
	if uri := os.Getenv("MONGO_URL"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

// GetDatabaseName returns the database holding the users collection.
func GetDatabaseName() string {
	if name := os.Getenv("MONGO_DB"); name != "" {
		return name
	}
	return "gamehub"
}

// GetPort returns the HTTP listen port.
func GetPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// GetUploadDir returns the root directory uploaded files are stored under
// and served from.
func GetUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}
