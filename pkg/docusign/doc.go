// Package docusign implements the OAuth 2.0 authorization code flow against
// DocuSign and normalizes the authenticated user's profile.
//
// The package is organized as a set of small, independently testable steps
// orchestrated by Strategy:
//
//   - BuildAuthorizationURL builds the redirect, including DocuSign's
//     display, auth_type and auth_nonce extension parameters.
//   - ClassifyCallback inspects the callback query for provider-reported
//     errors before any token exchange is attempted.
//   - MapTokenError classifies token endpoint failures, recognizing both
//     DocuSign's {"error":{"errorCode":...}} body and the RFC 6749 shape.
//   - Strategy.UserProfile calls the userinfo endpoint and ParseProfile
//     turns the body into a Profile.
//
// # Usage
//
//	strategy, err := docusign.New(docusign.Config{
//	    ClientID:     cfg.ClientID,
//	    ClientSecret: cfg.ClientSecret,
//	    CallbackURL:  "https://app.example.com/auth/docusign/callback",
//	    Scopes:       []string{"signature"},
//	}, docusign.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//	    res := strategy.Authenticate(r.Context(), r, docusign.AuthOptions{Display: "mobile"})
//	    switch res.Action {
//	    case docusign.ActionRedirect:
//	        http.Redirect(w, r, res.RedirectURL, http.StatusFound)
//	    case docusign.ActionSuccess:
//	        // res.Profile holds the DocuSign user, res.Token the tokens
//	    case docusign.ActionFail:
//	        // recoverable, e.g. the user denied access: res.Info.Message
//	    case docusign.ActionError:
//	        // res.Err is a ClassifiedError, inspect docusign.KindOf(res.Err)
//	    }
//	}
//
// Hosts preferring callbacks can implement Host and call Result.Deliver,
// which invokes exactly one of Redirect, Success, Fail or Error.
//
// # Error Handling
//
// Every provider or transport failure is reported as a ClassifiedError whose
// Kind is one of KindUserDenied, KindAuthorization, KindProviderAPI,
// KindStandardToken, KindInternalOAuth or KindParse. A denial is delivered
// through the fail channel; all other kinds through the error channel.
//
// # Transport
//
// The default Transport uses golang.org/x/oauth2 for the code exchange and a
// plain bearer GET for userinfo. Supply WithTransport to plug in another
// client; failures should be returned as *TransportError so response bodies
// can be classified.
package docusign
