package rest

import (
	"time"

	"github.com/SoloAk21/library-manager-backend/internal/domain"
)

type genreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toGenreResponse(g *domain.Genre) genreResponse {
	return genreResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func toGenreList(genres []*domain.Genre) []genreResponse {
	out := make([]genreResponse, len(genres))
	for i, g := range genres {
		out[i] = toGenreResponse(g)
	}
	return out
}

type bookResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	PublishedYear   int       `json:"published_year"`
	GenreID         string    `json:"genre_id"`
	Genre           string    `json:"genre"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:              b.ID.String(),
		Title:           b.Title,
		Author:          b.Author,
		PublishedYear:   b.PublishedYear,
		GenreID:         b.GenreID.String(),
		Genre:           b.GenreName,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func toBookList(books []*domain.Book) []bookResponse {
	out := make([]bookResponse, len(books))
	for i, b := range books {
		out[i] = toBookResponse(b)
	}
	return out
}

type memberResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	JoinDate      time.Time `json:"join_date"`
	ActiveBorrows int       `json:"active_borrows"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{
		ID:            m.ID.String(),
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		JoinDate:      m.JoinDate,
		ActiveBorrows: m.ActiveBorrows,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toMemberList(members []*domain.Member) []memberResponse {
	out := make([]memberResponse, len(members))
	for i, m := range members {
		out[i] = toMemberResponse(m)
	}
	return out
}

type staffResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toStaffResponse(s *domain.Staff) staffResponse {
	return staffResponse{
		ID:        s.ID.String(),
		Username:  s.Username,
		Email:     s.Email,
		Phone:     s.Phone,
		Role:      s.Role.String(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toStaffList(staff []*domain.Staff) []staffResponse {
	out := make([]staffResponse, len(staff))
	for i, s := range staff {
		out[i] = toStaffResponse(s)
	}
	return out
}

// borrowRecordResponse embeds the display fields joined from the book and
// member rows so list views need no extra round trips.
type borrowRecordResponse struct {
	ID         string         `json:"id"`
	BookID     string         `json:"book_id"`
	MemberID   string         `json:"member_id"`
	BorrowDate time.Time      `json:"borrow_date"`
	DueDate    time.Time      `json:"due_date"`
	ReturnDate *time.Time     `json:"return_date"`
	Status     string         `json:"status"`
	Book       bookBriefDTO   `json:"book"`
	Member     memberBriefDTO `json:"member"`
}

type bookBriefDTO struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type memberBriefDTO struct {
	Name string `json:"name"`
}

func toBorrowRecordResponse(rec *domain.BorrowRecord, now time.Time) borrowRecordResponse {
	return borrowRecordResponse{
		ID:         rec.ID.String(),
		BookID:     rec.BookID.String(),
		MemberID:   rec.MemberID.String(),
		BorrowDate: rec.BorrowDate,
		DueDate:    rec.DueDate,
		ReturnDate: rec.ReturnDate,
		Status:     domain.DeriveStatus(rec, now).String(),
		Book:       bookBriefDTO{Title: rec.BookTitle, Author: rec.BookAuthor},
		Member:     memberBriefDTO{Name: rec.MemberName},
	}
}

func toBorrowRecordList(records []*domain.BorrowRecord, now time.Time) []borrowRecordResponse {
	out := make([]borrowRecordResponse, len(records))
	for i, rec := range records {
		out[i] = toBorrowRecordResponse(rec, now)
	}
	return out
}

type overdueBookResponse struct {
	borrowRecordResponse
	DaysOverdue int `json:"days_overdue"`
}

func toOverdueList(rows []domain.OverdueBook, now time.Time) []overdueBookResponse {
	out := make([]overdueBookResponse, len(rows))
	for i, row := range rows {
		out[i] = overdueBookResponse{
			borrowRecordResponse: toBorrowRecordResponse(&row.Record, now),
			DaysOverdue:          row.DaysOverdue,
		}
	}
	return out
}

type popularGenreResponse struct {
	GenreID     string `json:"genre_id"`
	Genre       string `json:"genre"`
	BorrowCount int    `json:"borrow_count"`
}

func toPopularGenreList(rows []domain.GenreBorrowCount) []popularGenreResponse {
	out := make([]popularGenreResponse, len(rows))
	for i, row := range rows {
		out[i] = popularGenreResponse{
			GenreID:     row.GenreID.String(),
			Genre:       row.GenreName,
			BorrowCount: row.BorrowCount,
		}
	}
	return out
}

type summaryResponse struct {
	TotalBorrows    int     `json:"total_borrows"`
	AvgDurationDays float64 `json:"avg_duration_days"`
	ReturnRate      float64 `json:"return_rate"`
}

func toSummaryResponse(s domain.BorrowSummary) summaryResponse {
	return summaryResponse{
		TotalBorrows:    s.TotalBorrows,
		AvgDurationDays: s.AvgDurationDays,
		ReturnRate:      s.ReturnRate,
	}
}
