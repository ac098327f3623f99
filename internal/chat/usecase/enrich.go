package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-chatbot/internal/chat"
)

// enrichReply returns a live-data suffix for the weather, news and
// crypto intents, or "" when the intent has no upstream, the client is
// not configured, or the upstream call fails. Results are cached in an
// expirable LRU so repeated questions within the TTL stay local.
func (uc *implUseCase) enrichReply(ctx context.Context, intentName string) string {
	var key string
	switch intentName {
	case chat.IntentWeather:
		if uc.enrich.Weather == nil {
			return ""
		}
		key = fmt.Sprintf("weather:%s", uc.enrich.DefaultCity)
	case chat.IntentNews:
		if uc.enrich.News == nil {
			return ""
		}
		key = "news"
	case chat.IntentCrypto:
		if uc.enrich.Crypto == nil {
			return ""
		}
		key = fmt.Sprintf("crypto:%s", uc.enrich.DefaultCoin)
	default:
		return ""
	}

	if cached, ok := uc.enrichCache.Get(key); ok {
		return cached
	}

	suffix, err := uc.fetchEnrichment(ctx, intentName)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Send enrich intent=%s: %v", intentName, err)
		return ""
	}
	uc.enrichCache.Add(key, suffix)
	return suffix
}

func (uc *implUseCase) fetchEnrichment(ctx context.Context, intentName string) (string, error) {
	switch intentName {
	case chat.IntentWeather:
		w, err := uc.enrich.Weather.CurrentWeather(ctx, uc.enrich.DefaultCity)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Right now in %s: %s, %.1f°C, humidity %d%%.",
			w.City, w.Description, w.TempCelsius, w.Humidity), nil

	case chat.IntentNews:
		headlines, err := uc.enrich.News.TopHeadlines(ctx, 3)
		if err != nil {
			return "", err
		}
		if len(headlines) == 0 {
			return "", fmt.Errorf("no headlines returned")
		}
		titles := make([]string, len(headlines))
		for i, h := range headlines {
			titles[i] = h.Title
		}
		return fmt.Sprintf("Top headlines: %s.", strings.Join(titles, " | ")), nil

	case chat.IntentCrypto:
		price, err := uc.enrich.Crypto.SimplePrice(ctx, uc.enrich.DefaultCoin)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s is trading at $%.2f.", price.CoinID, price.USD), nil
	}
	return "", nil
}
