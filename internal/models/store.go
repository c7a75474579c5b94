package models

import "sync"

// ReportStore accumulates the latest assessment record per category for
// one interactive session. Last write wins per category; there is no
// delete, the store lives and dies with its session.
type ReportStore struct {
	mu      sync.RWMutex
	records map[Category]AssessmentRecord
}

func NewReportStore() *ReportStore {
	return &ReportStore{
		records: make(map[Category]AssessmentRecord),
	}
}

func (s *ReportStore) Put(category Category, record AssessmentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[category] = record
}

// Get returns the record for a category and whether one is present.
func (s *ReportStore) Get(category Category) (AssessmentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[category]
	return record, ok
}

// Records returns a defensive snapshot of the current contents.
func (s *ReportStore) Records() map[Category]AssessmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[Category]AssessmentRecord, len(s.records))
	for category, record := range s.records {
		snapshot[category] = record
	}
	return snapshot
}

func (s *ReportStore) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records) == 0
}
