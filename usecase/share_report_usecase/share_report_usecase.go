package share_report_usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"receipt/domain"
	"receipt/port/weekly_report_port"
	"receipt/utils/logger"
)

// ShareLink is returned when a report is shared.
type ShareLink struct {
	ShareURL   string `json:"shareUrl"`
	ShareToken string `json:"shareToken"`
}

type ShareReportUsecase struct {
	reportPort   weekly_report_port.WeeklyReportPort
	shareBaseURL string
	newToken     func() string
}

func NewShareReportUsecase(reportPort weekly_report_port.WeeklyReportPort, shareBaseURL string) *ShareReportUsecase {
	return &ShareReportUsecase{
		reportPort:   reportPort,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		newToken:     uuid.NewString,
	}
}

// Share marks the report shared and returns its link. Sharing again keeps
// the token issued the first time.
func (u *ShareReportUsecase) Share(ctx context.Context, userID, reportID string) (*ShareLink, error) {
	if _, err := uuid.Parse(reportID); err != nil || userID == "" {
		return nil, domain.ErrReportNotFound
	}

	token, err := u.reportPort.SetShared(ctx, userID, reportID, u.newToken(), true)
	if err != nil {
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "Weekly report shared", "report_id", reportID, "user_id", userID)
	return &ShareLink{
		ShareURL:   u.shareBaseURL + "/" + token,
		ShareToken: token,
	}, nil
}

// Unshare hides the report from its share link. The token is kept so that
// sharing again restores the same link.
func (u *ShareReportUsecase) Unshare(ctx context.Context, userID, reportID string) error {
	if _, err := uuid.Parse(reportID); err != nil || userID == "" {
		return domain.ErrReportNotFound
	}

	if _, err := u.reportPort.SetShared(ctx, userID, reportID, "", false); err != nil {
		return err
	}
	logger.Logger.InfoContext(ctx, "Weekly report unshared", "report_id", reportID, "user_id", userID)
	return nil
}

// GetShared returns the public projection of a shared report.
func (u *ShareReportUsecase) GetShared(ctx context.Context, token string) (*domain.SharedReportView, error) {
	if token == "" {
		return nil, domain.ErrSharedReportMissing
	}

	report, err := u.reportPort.GetSharedReport(ctx, token)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrSharedReportMissing
	}

	view := report.SharedView()
	return &view, nil
}
