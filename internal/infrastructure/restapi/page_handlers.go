package restapi

import (
	"net/http"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/app/service"
	"erc20_indexer/internal/app/session"
	"erc20_indexer/internal/app/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pageData данные для шаблона index.html.
type pageData struct {
	State          view.State
	Prompt         string
	RefreshSeconds int
}

// PageHandler отдает HTML страницу и обрабатывает ее формы.
type PageHandler struct {
	sessions   *session.Store
	queries    *service.QueryService
	wallet     port.WalletConnector
	cookieName string
	cookieTTL  time.Duration
	logger     *zap.Logger
}

// NewPageHandler создает новый экземпляр PageHandler.
func NewPageHandler(
	sessions *session.Store,
	queries *service.QueryService,
	wallet port.WalletConnector,
	cookieName string,
	cookieTTL time.Duration,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		sessions:   sessions,
		queries:    queries,
		wallet:     wallet,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
		logger:     logger.Named("PageHandler"),
	}
}

// Show renders the page. While a query is running the page refreshes itself.
func (h *PageHandler) Show(c *gin.Context) {
	sess := h.session(c)
	c.HTML(http.StatusOK, "index.html", pageData{
		State:          sess.Render(),
		Prompt:         view.PromptMessage,
		RefreshSeconds: 1,
	})
}

// State returns the session state as JSON for clients that poll instead of
// reloading the page. Pending notifications are left in place.
func (h *PageHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.session(c).Snapshot())
}

// Submit starts a balance query for the submitted address or name.
func (h *PageHandler) Submit(c *gin.Context) {
	sess := h.session(c)
	input := c.PostForm("address")
	seq := h.queries.Submit(sess, input)
	h.logger.Debug("Query submitted", zap.String("session", sess.ID), zap.Uint64("seq", seq))
	c.Redirect(http.StatusSeeOther, "/")
}

// Connect asks the wallet for an account and fills the input with it.
func (h *PageHandler) Connect(c *gin.Context) {
	sess := h.session(c)
	sess.Dispatch(view.WalletConnected{Connection: h.wallet.Connect(c.Request.Context())})
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) session(c *gin.Context) *session.Session {
	id, _ := c.Cookie(h.cookieName)
	sess := h.sessions.GetOrCreate(id)
	if sess.ID != id || h.cookieTTL > 0 {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookieName, sess.ID, int(h.cookieTTL.Seconds()), "/", "", false, true)
	}
	return sess
}
