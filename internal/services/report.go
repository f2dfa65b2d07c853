package services

import (
	"sort"
	"strings"

	"quizmaster/internal/models"

	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// UserOverview aggregates one user's scores across all quizzes.
// Percentage is nil when the user has no graded questions at all, so a
// zero total never divides.
type UserOverview struct {
	User           models.User
	TotalScored    int
	TotalQuestions int
	Percentage     *float64
}

func (s *ReportService) UserOverviews() ([]UserOverview, error) {
	var users []models.User
	if err := s.db.Preload("Scores").Find(&users).Error; err != nil {
		return nil, err
	}

	overviews := make([]UserOverview, 0, len(users))
	for _, u := range users {
		o := UserOverview{User: u}
		for _, sc := range u.Scores {
			o.TotalScored += sc.TotalScored
			o.TotalQuestions += sc.TotalQuestions
		}
		if o.TotalQuestions > 0 {
			pct := 100 * float64(o.TotalScored) / float64(o.TotalQuestions)
			o.Percentage = &pct
		}
		overviews = append(overviews, o)
	}
	return overviews, nil
}

// ChapterSummary accumulates a learner's attempts per chapter. Chapters
// the learner never attempted do not appear.
type ChapterSummary struct {
	ChapterID      uint
	ChapterName    string
	SubjectName    string
	Attempts       int
	TotalScored    int
	TotalQuestions int
}

func (s *ReportService) ChapterSummaries(userID uint) ([]ChapterSummary, error) {
	var scores []models.Score
	err := s.db.Where("user_id = ?", userID).
		Preload("Quiz.Chapter.Subject").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}

	byChapter := make(map[uint]*ChapterSummary)
	for _, sc := range scores {
		ch := sc.Quiz.Chapter
		summary, ok := byChapter[ch.ID]
		if !ok {
			summary = &ChapterSummary{
				ChapterID:   ch.ID,
				ChapterName: ch.Name,
				SubjectName: ch.Subject.Name,
			}
			byChapter[ch.ID] = summary
		}
		summary.Attempts++
		summary.TotalScored += sc.TotalScored
		summary.TotalQuestions += sc.TotalQuestions
	}

	summaries := make([]ChapterSummary, 0, len(byChapter))
	for _, summary := range byChapter {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(a, b int) bool {
		return summaries[a].ChapterID < summaries[b].ChapterID
	})
	return summaries, nil
}

// SearchResults holds independent per-entity result sets; there is no
// ranked merge across types.
type SearchResults struct {
	Users     []models.User
	Subjects  []models.Subject
	Chapters  []models.Chapter
	Quizzes   []models.Quiz
	Questions []models.Question
}

// SearchAdmin matches a case-insensitive substring against every
// searchable entity type.
func (s *ReportService) SearchAdmin(query string) (*SearchResults, error) {
	pattern := likePattern(query)
	results := &SearchResults{}

	if err := s.db.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).Find(&results.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Find(&results.Subjects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Find(&results.Chapters).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(remarks) LIKE ?", pattern).Find(&results.Quizzes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(statement) LIKE ?", pattern).Find(&results.Questions).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// SearchUser is the learner variant: subjects by name and quizzes by
// remarks only.
func (s *ReportService) SearchUser(query string) (*SearchResults, error) {
	pattern := likePattern(query)
	results := &SearchResults{}

	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Find(&results.Subjects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("LOWER(remarks) LIKE ?", pattern).Find(&results.Quizzes).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}

// ContentCounts feeds the admin dashboard.
type ContentCounts struct {
	Subjects  int64
	Chapters  int64
	Quizzes   int64
	Questions int64
	Users     int64
}

func (s *ReportService) CountContent() (*ContentCounts, error) {
	counts := &ContentCounts{}
	if err := s.db.Model(&models.Subject{}).Count(&counts.Subjects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Chapter{}).Count(&counts.Chapters).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Quiz{}).Count(&counts.Quizzes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Question{}).Count(&counts.Questions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&counts.Users).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
