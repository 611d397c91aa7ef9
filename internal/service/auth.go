package service

// Initialization of Clerk services by passing the secret key from config.
import (
	"github.com/brianloooooh/accountability-app/internal/server"
	"github.com/clerk/clerk-sdk-go/v2"
)

type AuthService struct {
	server *server.Server
}

func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
