// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-patient-keeper/models"
)

type user struct {
	ID           int64
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	CompanyID    int64
}

type companyPatient struct {
	models.Patient
	CompanyID int64
}

// memoryStore holds users, companies and patients. Emails are matched
// case-insensitively.
type memoryStore struct {
	mu sync.RWMutex

	users     map[string]user
	companies map[int64]models.Company
	patients  map[int64]companyPatient

	lastUserID    int64
	lastCompanyID int64
	lastPatientID int64

	now func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     make(map[string]user),
		companies: make(map[int64]models.Company),
		patients:  make(map[int64]companyPatient),
		now:       time.Now,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// createCompanyUser registers a company together with its first user.
func (s *memoryStore) createCompanyUser(companyName string, u user) (user, models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(u.Email)
	if _, ok := s.users[key]; ok {
		return user{}, models.Company{}, ErrEmailTaken
	}

	s.lastCompanyID++
	company := models.Company{ID: s.lastCompanyID, Name: companyName}
	s.companies[company.ID] = company

	s.lastUserID++
	u.ID = s.lastUserID
	u.CompanyID = company.ID
	s.users[key] = u

	return u, company, nil
}

func (s *memoryStore) userByEmail(email string) (user, models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[emailKey(email)]
	if !ok {
		return user{}, models.Company{}, ErrUserNotFound
	}
	return u, s.companies[u.CompanyID], nil
}

func (s *memoryStore) listPatients(companyID int64) []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]models.Patient, 0)
	for _, p := range s.patients {
		if p.CompanyID == companyID {
			patients = append(patients, p.Patient)
		}
	}
	slices.SortFunc(patients, func(a, b models.Patient) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return patients
}

// getPatient returns the patient only if it belongs to companyID; patients
// of other companies are reported as not found.
func (s *memoryStore) getPatient(companyID, id int64) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok || p.CompanyID != companyID {
		return models.Patient{}, ErrPatientNotFound
	}
	return p.Patient, nil
}

func (s *memoryStore) createPatient(companyID int64, p models.Patient) models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastPatientID++
	now := s.timestamp()
	p.ID = s.lastPatientID
	p.CreatedAt = now
	p.UpdatedAt = now

	s.patients[p.ID] = companyPatient{Patient: p, CompanyID: companyID}
	return p
}

func (s *memoryStore) updatePatient(companyID, id int64, p models.Patient) (models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.patients[id]
	if !ok || existing.CompanyID != companyID {
		return models.Patient{}, ErrPatientNotFound
	}

	p.ID = id
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.timestamp()

	s.patients[id] = companyPatient{Patient: p, CompanyID: companyID}
	return p, nil
}

func (s *memoryStore) deletePatient(companyID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.patients[id]
	if !ok || existing.CompanyID != companyID {
		return ErrPatientNotFound
	}

	delete(s.patients, id)
	return nil
}

func (s *memoryStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
