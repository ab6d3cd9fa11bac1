package services

import (
	"kantin-backend/entity"
	"kantin-backend/repository"
)

type RoleService struct {
	Repo *repository.RoleRepository
}

func NewRoleService(repo *repository.RoleRepository) *RoleService {
	return &RoleService{Repo: repo}
}

func (s *RoleService) List() ([]entity.Role, error) {
	return s.Repo.FindAll()
}
