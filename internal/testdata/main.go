package testdata

import (
	"io/ioutil"
	"path/filepath"
)

// Files of a small map with the same objects in a 3.x and a 2.x difficulty.
var Files = map[string]string{
	"Info.dat":               info,
	"ExpertPlusStandard.dat": expertPlusV3,
	"HardStandard.dat":       hardV2,
}

// Write stores the fixture map in dir.
func Write(dir string) error {
	for name, content := range Files {
		if err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); nil != err {
			return err
		}
	}
	return nil
}

const info = `{
  "_version": "2.1.0",
  "_songName": "Last Wish",
  "_songSubName": "",
  "_songAuthorName": "BSWC Team",
  "_levelAuthorName": "mapper",
  "_beatsPerMinute": 128,
  "_songTimeOffset": 0.5,
  "_shuffle": 0,
  "_shufflePeriod": 0.5,
  "_previewStartTime": 12,
  "_previewDuration": 10,
  "_songFilename": "song.egg",
  "_coverImageFilename": "cover.png",
  "_difficultyBeatmapSets": [
    {
      "_beatmapCharacteristicName": "Standard",
      "_difficultyBeatmaps": [
        {
          "_difficulty": "Hard",
          "_difficultyRank": 5,
          "_beatmapFilename": "HardStandard.dat",
          "_noteJumpStartBeatOffset": 0
        },
        {
          "_difficulty": "ExpertPlus",
          "_difficultyRank": 9,
          "_beatmapFilename": "ExpertPlusStandard.dat",
          "_noteJumpMovementSpeed": 18,
          "_noteJumpStartBeatOffset": 0
        }
      ]
    },
    {
      "_beatmapCharacteristicName": "OneSaber",
      "_difficultyBeatmaps": [
        {
          "_difficulty": "Expert",
          "_difficultyRank": 7,
          "_beatmapFilename": "ExpertOneSaber.dat",
          "_noteJumpMovementSpeed": 16,
          "_noteJumpStartBeatOffset": -0.5
        }
      ]
    }
  ]
}`

const expertPlusV3 = `{
  "version": "3.2.0",
  "bpmEvents": [],
  "colorNotes": [
    {"b": 5, "x": 1, "y": 0, "c": 0, "d": 1, "a": 0},
    {"b": 7, "x": 2, "y": 2, "c": 1, "d": 8, "a": 15}
  ],
  "bombNotes": [
    {"b": 7, "x": 0, "y": 1}
  ],
  "obstacles": [
    {"b": 6, "d": 2, "x": 3, "y": 0, "w": 1, "h": 5}
  ]
}`

const hardV2 = `{
  "_version": "2.2.0",
  "_notes": [
    {"_time": 5, "_lineIndex": 1, "_lineLayer": 0, "_type": 0, "_cutDirection": 1},
    {"_time": 7, "_lineIndex": 2, "_lineLayer": 2, "_type": 1, "_cutDirection": 8},
    {"_time": 7, "_lineIndex": 0, "_lineLayer": 1, "_type": 3, "_cutDirection": 0}
  ],
  "_obstacles": [
    {"_time": 6, "_lineIndex": 3, "_type": 0, "_duration": 2, "_width": 1}
  ],
  "_events": []
}`
