package itinerary

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type fakePhotoFinder struct {
	urls  []string
	err   error
	calls int
}

func (f *fakePhotoFinder) DestinationPhotos(ctx context.Context, destination string, limit int) ([]string, error) {
	f.calls++
	return f.urls, f.err
}

func TestImageStageAttachesPhotos(t *testing.T) {
	photos := &fakePhotoFinder{urls: []string{"https://img/1", "https://img/2"}}
	stage := imageStage(photos)

	it := normalize(nil, goaRequest())
	out := stage(context.Background(), it, goaRequest())

	if !reflect.DeepEqual(out.Images.Destination, photos.urls) {
		t.Errorf("Images.Destination = %v, want %v", out.Images.Destination, photos.urls)
	}
}

func TestImageStageFailureLeavesItineraryUnchanged(t *testing.T) {
	photos := &fakePhotoFinder{err: errors.New("places: backend down")}
	stage := imageStage(photos)

	it := normalize(nil, goaRequest())
	out := stage(context.Background(), it, goaRequest())

	if !reflect.DeepEqual(out, it) {
		t.Errorf("failing stage must return its input unchanged")
	}
}

func TestImageStageSkipsWhenModelSuppliedImages(t *testing.T) {
	photos := &fakePhotoFinder{urls: []string{"https://img/extra"}}
	stage := imageStage(photos)

	it := normalize(nil, goaRequest())
	it.Images.Destination = []string{"https://model/1"}
	out := stage(context.Background(), it, goaRequest())

	if photos.calls != 0 {
		t.Errorf("photo finder called %d times, want 0", photos.calls)
	}
	if len(out.Images.Destination) != 1 || out.Images.Destination[0] != "https://model/1" {
		t.Errorf("Images.Destination = %v, want the model's own images kept", out.Images.Destination)
	}
}

func TestWeatherStageFillsEveryRequestedDay(t *testing.T) {
	stage := weatherStage()
	req := goaRequest()
	req.Duration = "3 days 2 nights"
	req.StartDate = time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	it := normalize(nil, req)
	it.Weather = []WeatherInfo{{Day: 2, Summary: "Sunny", HighC: 31, LowC: 24}}

	out := stage(context.Background(), it, req)
	if len(out.Weather) != 3 {
		t.Fatalf("len(Weather) = %d, want 3", len(out.Weather))
	}

	byDay := make(map[int]WeatherInfo)
	for _, w := range out.Weather {
		byDay[w.Day] = w
	}
	if byDay[2].Summary != "Sunny" {
		t.Errorf("day 2 = %+v, want the model's entry kept", byDay[2])
	}
	for _, d := range []int{1, 3} {
		w, ok := byDay[d]
		if !ok {
			t.Fatalf("day %d missing", d)
		}
		if w.Summary != "Forecast not yet available" {
			t.Errorf("day %d Summary = %q, want placeholder", d, w.Summary)
		}
	}
	if byDay[3].Date != "2026-10-14" {
		t.Errorf("day 3 Date = %q, want 2026-10-14", byDay[3].Date)
	}
}
