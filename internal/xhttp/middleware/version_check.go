package middleware

import (
	"net/http"

	"github.com/garrettladley/lumi/internal/version"
	"github.com/garrettladley/lumi/internal/xerrors"
	"github.com/garrettladley/lumi/internal/xslog"
)

// VersionCheck rejects lumi clients from another major release with 426.
// Requests without a version header are let through; the firmware has no
// notion of client versions and neither do curl users.
func VersionCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientVersion := r.Header.Get(version.Header)
		if clientVersion == "" {
			next.ServeHTTP(w, r)
			return
		}

		if verr := version.CheckCompatibility(clientVersion); verr != nil {
			xslog.FromContext(r.Context()).WarnContext(
				r.Context(),
				"client version incompatible",
				xslog.ClientVersion(verr.ClientVersion),
				xslog.ServerVersion(verr.ServerVersion),
				xslog.MinVersion(verr.MinVersion),
				xslog.RequestPath(r),
			)
			xerrors.WriteError(r.Context(), w, xerrors.UpgradeRequired(
				xerrors.WithMessage(verr.Error()),
				xerrors.WithCode("incompatible_version"),
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}
