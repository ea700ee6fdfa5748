package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"agroapi/internal/domain"
	"agroapi/internal/service"

	tele "gopkg.in/telebot.v3"
)

func StartTelegramBot(
	token string,
	boards *service.BoardService,
	exchange *service.ExchangeService,
	weather *service.WeatherService,
	defaultLat, defaultLon string,
) {
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/precios", func(c tele.Context) error {
		filtro := strings.Join(c.Args(), " ")
		board, err := boards.GetBoard(context.Background(), filtro)
		if err != nil {
			return c.Send(fmt.Sprintf("Error al obtener la pizarra: %v", err))
		}
		if len(board.Entradas) == 0 {
			if filtro != "" {
				return c.Send(fmt.Sprintf("Sin precios para %q", filtro))
			}
			return c.Send("La pizarra no tiene precios publicados")
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Pizarra %s %s\n", board.Fecha, board.Hora)
		for _, e := range board.Entradas {
			fmt.Fprintf(&sb, "%s: %s (%s)\n", e.Producto, e.Precio, e.Tendencia)
		}
		return c.Send(sb.String())
	})

	b.Handle("/dolar", func(c tele.Context) error {
		quote, section, err := exchange.FindCurrency(context.Background(), domain.CategoryBilletes, "dolar")
		if err != nil {
			return c.Send(fmt.Sprintf("Error al obtener la cotización: %v", err))
		}
		msg := fmt.Sprintf(
			"%s (billetes %s %s)\nCompra: %s\nVenta: %s",
			quote.Moneda, section.Fecha, section.Hora, quote.CompraTexto, quote.VentaTexto,
		)
		return c.Send(msg)
	})

	b.Handle("/tasa", func(c tele.Context) error {
		rate, err := exchange.GetLendingRate(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error al obtener la tasa activa: %v", err))
		}
		return c.Send(formatRateMessage(rate))
	})

	b.Handle("/clima", func(c tele.Context) error {
		report, err := weather.GetWeather(context.Background(), defaultLat, defaultLon)
		if err != nil {
			return c.Send(fmt.Sprintf("Error al obtener el clima: %v", err))
		}
		return c.Send(report.FormattedMessage, tele.ModeMarkdown)
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatRateMessage(rate *domain.RateAnnouncement) string {
	return fmt.Sprintf(
		"Tasa Activa BNA\nTNA: %.2f%%\nVigente desde: %s",
		rate.TasaNominalAnual, rate.FechaVigencia,
	)
}
