package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/logging"
	"github.com/tubetale/tubetale/src/reports"
	"github.com/tubetale/tubetale/src/ui"
	"github.com/tubetale/tubetale/src/webclient"
)

var (
	baseFlag     = flag.String("base", "http://localhost:5000", "Analytics service base URL")
	opFlag       = flag.String("op", "solo", "solo|battle|truth")
	channelFlag  = flag.String("channel", "veritasium", "Channel name for solo mode")
	channelsFlag = flag.String("channels", "veritasium,kurzgesagt", "Comma-separated channels for battle mode")
	videoFlag    = flag.String("video", "", "YouTube URL for truth mode")
	timeoutFlag  = flag.Duration("timeout", 3*time.Minute, "Per-request timeout")
	pdfFlag      = flag.String("pdf", "", "Write the result as a PDF to this path")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	client := analytics.NewClient(*baseFlag, webclient.NewDefault(*timeoutFlag), logging.New("debug"))
	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	var (
		pdf []byte
		err error
	)
	switch *opFlag {
	case "solo":
		pdf, err = runSolo(ctx, client)
	case "battle":
		pdf, err = runBattle(ctx, client)
	case "truth":
		pdf, err = runTruth(ctx, client)
	default:
		log.Fatalf("unknown op %q", *opFlag)
	}
	if err != nil {
		log.Fatalf("[%s] ERROR: %v", *opFlag, err)
	}

	if *pdfFlag != "" && pdf != nil {
		if err := os.WriteFile(*pdfFlag, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
		log.Printf("wrote %s (%d bytes)", *pdfFlag, len(pdf))
	}
}

func runSolo(ctx context.Context, client *analytics.Client) ([]byte, error) {
	if err := ui.ValidateSolo(*channelFlag); err != nil {
		return nil, err
	}
	report, err := client.AnalyzeChannel(ctx, *channelFlag)
	if err != nil {
		return nil, err
	}
	log.Printf("channel:     %s (%s)", report.ChannelName, report.Stats.Country)
	log.Printf("subscribers: %s, videos: %s", report.Stats.Subscribers, report.Stats.TotalVideos)
	log.Printf("status:      %s - %s", report.Recommendation.Status, report.Recommendation.Reason)
	log.Printf("timeline:    %d points, topics: %d, sources: %d",
		len(report.GrowthTimeline), len(report.TopicAnalysis.TopicDistribution), len(report.Sources))
	if *pdfFlag == "" {
		return nil, nil
	}
	return reports.NewGenerator().Solo(report)
}

func runBattle(ctx context.Context, client *analytics.Client) ([]byte, error) {
	channels, err := ui.ValidateBattle(strings.Split(*channelsFlag, ","))
	if err != nil {
		return nil, err
	}
	report, err := client.RunBattle(ctx, channels)
	if err != nil {
		return nil, err
	}
	log.Printf("winner: %s", report.Verdict.Winner)
	for _, s := range report.Scores {
		marker := " "
		if s.ChannelName == report.Verdict.Winner {
			marker = "*"
		}
		log.Printf("%s %-24s overall %3.0f (q%3.0f c%3.0f t%3.0f v%3.0f)",
			marker, s.ChannelName, s.Overall, s.Quality, s.Consistency, s.Trust, s.Variety)
	}
	if *pdfFlag == "" {
		return nil, nil
	}
	return reports.NewGenerator().Battle(report)
}

func runTruth(ctx context.Context, client *analytics.Client) ([]byte, error) {
	if err := ui.ValidateTruth(*videoFlag); err != nil {
		return nil, err
	}
	report, err := client.AnalyzeTruth(ctx, *videoFlag)
	if err != nil {
		return nil, err
	}
	log.Printf("video:   %s by %s", report.VideoTitle, report.CreatorName)
	log.Printf("score:   %d/100 (faking facts: %v)", report.TruthScore, report.IsFakingFacts)
	log.Printf("verdict: %s", report.SummaryVerdict)
	for _, c := range report.Claims {
		log.Printf("  [%s] %s", c.Status, truncate(c.Statement, 90))
	}
	if *pdfFlag == "" {
		return nil, nil
	}
	return reports.NewGenerator().Truth(report)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return fmt.Sprintf("%s...", s[:n])
}
